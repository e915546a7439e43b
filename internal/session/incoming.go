package session

import "strings"

// Incoming — разобранное входящее сообщение: команда с аргументами
// либо обычный текст.
type Incoming struct {
	IsCommand bool
	Command   string
	Args      []string
	Text      string
}

// ParseIncoming отделяет команды от обычного текста в одном месте,
// чтобы обработчики не проверяли префикс каждый по-своему.
func ParseIncoming(text string) Incoming {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "/") {
		return Incoming{Text: trimmed}
	}

	fields := strings.Fields(trimmed)
	command := strings.TrimPrefix(fields[0], "/")

	// в группах команды приходят как /log_water@имябота
	if at := strings.Index(command, "@"); at != -1 {
		command = command[:at]
	}

	return Incoming{
		IsCommand: true,
		Command:   command,
		Args:      fields[1:],
		Text:      trimmed,
	}
}
