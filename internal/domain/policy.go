package domain

import (
	"math"
	"time"
)

// CancellationPolicy настройки политики отмены юнита
// Изменяется только через настройки юнита, ядро планирования её лишь читает
type CancellationPolicy struct {
	UnitID             int64
	GracePeriodMinutes int
	LateFeePercent     int // 0-100, валидируется на границе настроек
	NoShowFeePercent   int // 0-100, валидируется на границе настроек
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CancellationTiming классификация отмены относительно grace-периода
type CancellationTiming struct {
	MinutesBefore int // со знаком: отрицательное значение - отмена после начала
	IsLate        bool
}

// ClassifyCancellation вычисляет классификацию отмены
// MinutesBefore = round((scheduledAt - cancelledAt) / 60s)
// Отмена ровно за GracePeriodMinutes минут поздней не считается
func ClassifyCancellation(scheduledAt, cancelledAt time.Time, policy CancellationPolicy) CancellationTiming {
	minutesBefore := int(math.Round(scheduledAt.Sub(cancelledAt).Seconds() / 60))

	return CancellationTiming{
		MinutesBefore: minutesBefore,
		IsLate:        minutesBefore < policy.GracePeriodMinutes,
	}
}

// CancellationFee вычисляет сумму к оплате за отмену
// Комиссия взимается только при поздней отмене или неявке
// Флаг неявки никогда не выводится из времени - его задаёт вызывающая сторона
func CancellationFee(servicePrice float64, isLate, isNoShow bool, policy CancellationPolicy) float64 {
	if !isLate && !isNoShow {
		return 0
	}

	percent := policy.LateFeePercent
	if isNoShow {
		percent = policy.NoShowFeePercent
	}

	return servicePrice * float64(percent) / 100
}
