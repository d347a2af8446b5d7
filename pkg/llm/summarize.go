package llm

import (
	"fmt"
	"strings"
)

const summarySystemPrompt = `Ты — аналитик новостей об искусственном интеллекте. Пишешь кратко, по делу, без рекламных оборотов. Отвечай только на русском языке.`

const summaryUserTemplate = `Ниже собранные за последнее время факты и новости по теме «искусственный интеллект»:

%s

Составь на их основе:
1. Пять ключевых выводов (по одному предложению каждый).
2. Краткий отчёт для публикации в Telegram-канале (3-4 абзаца).
3. Ключевые цифры и статистику, если они есть в фактах.

Весь текст — на русском языке.`

func buildUserPrompt(findings string) string {
	return fmt.Sprintf(summaryUserTemplate, findings)
}

func trimCodeFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```markdown")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
