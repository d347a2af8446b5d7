package pipeline

import (
	"fmt"
	"time"
)

const reportHeader = "🤖 <b>Дайджест: искусственный интеллект</b>\n\n"

var ruMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// BuildReport wraps the summary with the digest header and a generation
// timestamp footer. Pure; never fails.
func BuildReport(summary string, now time.Time) string {
	return reportHeader + summary + "\n\n<i>Сформировано " + formatRuTimestamp(now) + "</i>"
}

func formatRuTimestamp(t time.Time) string {
	return fmt.Sprintf("%d %s %d г., %02d:%02d",
		t.Day(), ruMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
