package whatsapp

import "strings"

// normalizePhone приводит телефон клиента к формату "whatsapp:+NNNNNNNNNNN".
// Принимает локальные номера (8 цифр - добавляется код страны по умолчанию),
// номера с международным префиксом "00" и уже полные номера с кодом страны.
// Возвращает пустую строку, если из входа не извлекаются цифры.
func normalizePhone(raw string, defaultCountry string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if d == "" {
		return ""
	}

	// Международный префикс "00" -> отбрасываем
	if strings.HasPrefix(d, "00") {
		d = d[2:]
	}

	// Локальный номер без кода страны
	if len(d) == 8 && defaultCountry != "" {
		return "whatsapp:" + defaultCountry + d
	}

	return "whatsapp:+" + d
}
