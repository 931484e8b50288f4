package handlers

import (
	"strconv"
	"strings"
)

// Команды, которые перехватываются независимо от стека ожиданий.
const (
	cmdMenu       = "меню"
	cmdPeriod     = "время м/у итерациями"
	cmdYesterday  = "вчера"
	cmdToday      = "сегодня"
	cmdTimeZone   = "часовой пояс"
	cmdNotDisturb = "не беспокоить"
	cmdUpdate     = "обновить"
	cmdSettings   = "настройки"
	cmdReport     = "что было"
)

const (
	labelUnspecified = "Не указано"

	textChooseAction   = "Выберите действие"
	textChooseRecord   = "Выберите запись"
	textSetupFirst     = "Пожалуйста, введите желаемые настройки перед использованием бота"
	textRecordAdded    = "Запись добавлена."
	textRecordUpdated  = "Запись обновлена."
	textRecordNotFound = "Не найдена запись."
	textNoRecords      = "Не найдено записей"
	textRecordsHeader  = "Список записей : "
	textEnterNewLabel  = "Введите новый текст записи"
	textBadTime        = "Указано недопустимое время. Попробуйте снова"
	textBadMinutes     = "Указано недопустимое количество минут. Попробуйте снова"
	textBadChoice      = "Указан недопустимый номер записи. Попробуйте снова"
	textEnterPeriod    = "Введите период (в минутах)"
	textEnterClock     = "Введите текущее время (00:00)"
	textEnterWindow    = "Введите время, когда не стоит вас беспокоить (18:00 - 10:00)"
	textNoTimeZone     = "Не указан часовой пояс"
	textPeriodSet      = "Количество минут между итерациями установлено"
	textWindowSet      = "Время, когда не стоит вас беспокоить, установлено"
)

var (
	menuMain     = []string{"Что было", "Настройки"}
	menuSettings = []string{"Время м/у итерациями", "Часовой пояс", "Не беспокоить", "Меню"}
	menuReports  = []string{"Вчера", "Сегодня"}
)

// minutesText склоняет "N минут" и при надобности добавляет
// "последнюю/последние".
func minutesText(count int, last bool) string {
	str := strconv.Itoa(count)

	switch {
	case strings.HasSuffix(str, "1") && (count == 1 || count > 20):
		return lastPrefix(last, "последнюю ") + str + " минуту"
	case (strings.HasSuffix(str, "2") || strings.HasSuffix(str, "3") || strings.HasSuffix(str, "4")) &&
		(count < 10 || count > 20):
		return lastPrefix(last, "последние ") + str + " минуты"
	default:
		return lastPrefix(last, "последние ") + str + " минут"
	}
}

func lastPrefix(last bool, prefix string) string {
	if last {
		return prefix
	}
	return ""
}
