package domain

// Slot одна бронируемая часовая ячейка [StartHour, StartHour+1)
// Вычисляется на лету при каждом запросе и никогда не сохраняется
type Slot struct {
	StartHour int
	EndHour   int
}

// NewSlot создает часовой слот, начинающийся в h
func NewSlot(h int) Slot {
	return Slot{StartHour: h, EndHour: h + SlotDurationHours}
}

// AvailableSlots вычисляет упорядоченный список свободных часовых слотов:
// все часы открытого окна минус часы, покрытые занимающими бронированиями.
// Бронирование, выходящее за пределы окна, блокирует только пересечение с ним.
// Чистая функция; результат носит справочный характер - авторитетная проверка
// конфликтов происходит в момент коммита бронирования
func AvailableSlots(window DayWindow, bookings []*Booking) []Slot {
	slots := make([]Slot, 0, window.CloseHour-window.OpenHour)

	for h := window.OpenHour; h < window.CloseHour; h++ {
		occupied := false
		for _, b := range bookings {
			if !b.IsOccupying() {
				continue
			}
			if b.CoversHour(h) {
				occupied = true
				break
			}
		}
		if !occupied {
			slots = append(slots, NewSlot(h))
		}
	}

	return slots
}
