package syncing

import (
	"time"

	"github.com/vfg2006/discount-sync-api/internal/domain"
)

const (
	windowDefaultStartHour = 6
	windowOffsetHours      = 3
	windowLeadMinutes      = 5
)

// ComputeDiscountWindow calcula a vigência do lote enviado ao destino.
// Até 06:59 a janela começa às 06:00. Depois disso começa em (hora-3):(minuto+5),
// arredondando para a hora seguinte a partir do minuto 55. Termina sempre às 23:59 do mesmo dia.
// A plataforma rejeita janelas fora dessa regra, então o deslocamento de 3 horas é mantido como está.
func ComputeDiscountWindow(now time.Time, loc *time.Location) domain.DiscountWindow {
	if loc == nil {
		loc = time.Local
	}

	local := now.In(loc)
	year, month, day := local.Date()

	startHour, startMinute := windowDefaultStartHour, 0
	if local.Hour() > windowDefaultStartHour {
		startHour = local.Hour() - windowOffsetHours
		startMinute = local.Minute() + windowLeadMinutes
		if local.Minute() >= 55 {
			startHour++
			startMinute = 0
		}
	}

	return domain.DiscountWindow{
		StartAt:  time.Date(year, month, day, startHour, startMinute, 0, 0, loc),
		ExpireAt: time.Date(year, month, day, 23, 59, 0, 0, loc),
	}
}
