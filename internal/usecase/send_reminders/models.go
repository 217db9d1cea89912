package send_reminders

import "time"

// Response итог рассылки напоминаний
type Response struct {
	Date   time.Time // Дата, за которую отправлялись напоминания (завтра)
	Total  int       // Всего записей на дату
	Sent   int       // Успешно отправлено
	Failed int       // Не удалось отправить
}
