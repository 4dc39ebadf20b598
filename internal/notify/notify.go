// Package notify рассылает уведомления о новых классах.
package notify

import (
	"context"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/Freeeeeet/classes_api/internal/model"
	"github.com/Freeeeeet/classes_api/internal/timeofday"
)

// Nop ничего не отправляет, используется когда Telegram не настроен
type Nop struct{}

func (Nop) ClassRegistered(ctx context.Context, user *model.User, class *model.Class, windows []*model.ScheduleWindow) error {
	return nil
}

// FormatClassRegistered текст уведомления в HTML разметке Telegram
func FormatClassRegistered(user *model.User, class *model.Class, windows []*model.ScheduleWindow) string {
	var sb strings.Builder

	sb.WriteString("<b>New class registered</b>\n\n")
	sb.WriteString(fmt.Sprintf("Subject: <b>%s</b>\n", html.EscapeString(class.Subject)))
	sb.WriteString(fmt.Sprintf("Cost: %s\n", formatCost(class.Cost)))
	sb.WriteString(fmt.Sprintf("Tutor: %s\n", html.EscapeString(user.Name)))
	if user.Whatsapp != "" {
		sb.WriteString(fmt.Sprintf("WhatsApp: %s\n", html.EscapeString(user.Whatsapp)))
	}

	if len(windows) > 0 {
		sb.WriteString("\nSchedule:\n")
		for _, w := range windows {
			sb.WriteString(fmt.Sprintf("• %s %s\n", timeofday.WeekdayName(w.WeekDay), timeofday.FormatRange(w.From, w.To)))
		}
	}

	return sb.String()
}

// formatCost без дробной части если она равна 0
func formatCost(cost float64) string {
	if cost == math.Trunc(cost) {
		return fmt.Sprintf("%.0f", cost)
	}
	return fmt.Sprintf("%.2f", cost)
}
