package workouts

import (
	"fmt"
	"strings"
)

const fallbackNotice = "⚠️ Treino provisório (plano de contingência), aguardando o plano definitivo."

// RenderSession flattens a session into the text sent to the student.
func RenderSession(plan *Plan, session *Session) string {
	var sb strings.Builder

	if plan.IsFallback {
		sb.WriteString(fallbackNotice)
		sb.WriteString("\n\n")
	}

	sb.WriteString("🏋️ ")
	sb.WriteString(session.Title)
	sb.WriteString("\n")

	for i, ex := range session.Exercises {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, ex.Name))
		if ex.MuscleGroup != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", ex.MuscleGroup))
		}
		sb.WriteString(fmt.Sprintf("\n   %d x %s", ex.Sets, ex.Reps))
		if ex.Weight != "" {
			sb.WriteString(fmt.Sprintf(" | carga: %s", ex.Weight))
		}
		if ex.RestSeconds > 0 {
			sb.WriteString(fmt.Sprintf(" | descanso: %ds", ex.RestSeconds))
		}
	}

	sb.WriteString("\n\nQuando terminar, responda FEITO ✅")

	return sb.String()
}
