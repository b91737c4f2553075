// Package render writes domain records as aligned text for the terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"taskmaster/internal/model"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func Tasks(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No hay tareas.")
		return
	}
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPRIORITY\tSTART\tEND\tASSIGNEES")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.TaskID, t.Title, t.Status, t.Priority,
			datePart(t.StartDate), datePart(t.EndDate), joinIDs(t.AssignedUserIDs))
	}
	tw.Flush()
}

func Projects(w io.Writer, projects []model.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No hay proyectos.")
		return
	}
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tKEY\tNAME\tSTATUS\tBUDGET\tEND")
	for _, p := range projects {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\t%s\n",
			p.ID, p.Key, p.Name, p.Status, p.Budget, datePart(p.EndDate))
	}
	tw.Flush()
}

func Users(w io.Writer, users []model.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No hay usuarios.")
		return
	}
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLES")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			u.ID, u.FullName(), u.Email, strings.Join(u.Roles, ","))
	}
	tw.Flush()
}

func Notifications(w io.Writer, ns []model.Notification) {
	if len(ns) == 0 {
		fmt.Fprintln(w, "No hay notificaciones.")
		return
	}
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "SENT\tTITLE\tMESSAGE")
	for _, n := range ns {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", datePart(n.SentAt), n.Title, n.Message)
	}
	tw.Flush()
}

func ProjectStats(w io.Writer, name string, s model.ProjectStats) {
	fmt.Fprintf(w, "Proyecto: %s\n\n", name)
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Total\t%d\n", s.TotalTasks)
	fmt.Fprintf(tw, "Vencidas\t%d\n", s.OverdueTasks)
	fmt.Fprintf(tw, "Por hacer\t%d\n", s.TodoTasks)
	fmt.Fprintf(tw, "En progreso\t%d\n", s.InProgress)
	fmt.Fprintf(tw, "Completadas\t%d\n", s.DoneTasks)
	fmt.Fprintf(tw, "Prioridad alta\t%d\n", s.HighPriority)
	fmt.Fprintf(tw, "Prioridad media\t%d\n", s.MedPriority)
	fmt.Fprintf(tw, "Prioridad baja\t%d\n", s.LowPriority)
	fmt.Fprintf(tw, "Mejor miembro\t%s\n", s.BestMember)
	fmt.Fprintf(tw, "Peor miembro\t%s\n", s.WorstMember)
	fmt.Fprintf(tw, "Presupuesto\t%.2f\n", s.Budget)
	fmt.Fprintf(tw, "Presupuesto usado\t%.2f\n", s.UsedBudget)
	tw.Flush()
}

func UserStats(w io.Writer, label string, s model.UserTaskStats) {
	fmt.Fprintf(w, "Miembro: %s\n\n", label)
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Total\t%d\n", s.TotalTasks)
	fmt.Fprintf(tw, "Por hacer\t%d\n", s.TodoTasks)
	fmt.Fprintf(tw, "En progreso\t%d\n", s.InProgress)
	fmt.Fprintf(tw, "Completadas\t%d\n", s.DoneTasks)
	fmt.Fprintf(tw, "Prioridad alta\t%d\n", s.HighPriority)
	fmt.Fprintf(tw, "Prioridad media\t%d\n", s.MedPriority)
	fmt.Fprintf(tw, "Prioridad baja\t%d\n", s.LowPriority)
	tw.Flush()
}

// Calendar draws the 42-day grid, marking days outside the month with dots
// and showing the task count per day.
func Calendar(w io.Writer, year int, month time.Month, days []model.CalendarDay) {
	fmt.Fprintf(w, "%s %d\n", month, year)
	fmt.Fprintln(w, " Dom  Lun  Mar  Mie  Jue  Vie  Sab")
	for week := 0; week < len(days)/7; week++ {
		var line strings.Builder
		for i := 0; i < 7; i++ {
			d := days[week*7+i]
			cell := fmt.Sprintf("%2d", d.Day)
			if !d.IsCurrentMonth {
				cell = " ."
			}
			mark := " "
			if len(d.Tasks) > 0 {
				mark = "*"
			}
			line.WriteString(fmt.Sprintf(" %s%s ", cell, mark))
		}
		fmt.Fprintln(w, line.String())
	}
}

func datePart(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func joinIDs(ids model.Int64List) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
