package service

import (
	"strings"

	"github.com/octobees/futsal-booking/api/internal/dto"
	"github.com/octobees/futsal-booking/api/internal/entity"
)

// paymentChannel describes one supported payment toggle. New channels are
// added here without touching the assembly logic or the existing entries.
type paymentChannel struct {
	label   string
	enabled func(p dto.PaymentPreferences) bool
	name    func(p dto.PaymentPreferences) string
	number  func(p dto.PaymentPreferences) string
}

var paymentChannels = []paymentChannel{
	{
		label:   "Cash on Arrival",
		enabled: func(p dto.PaymentPreferences) bool { return p.Cash },
	},
	{
		label:   "WeChat Pay",
		enabled: func(p dto.PaymentPreferences) bool { return p.Wechat },
		name:    func(p dto.PaymentPreferences) string { return p.WechatName },
		number:  func(p dto.PaymentPreferences) string { return p.WechatPhone },
	},
	{
		label:   "KBZ Pay",
		enabled: func(p dto.PaymentPreferences) bool { return p.Kpay },
		name:    func(p dto.PaymentPreferences) string { return p.KpayName },
		number:  func(p dto.PaymentPreferences) string { return p.KpayPhone },
	},
	{
		label:   "PayLah!",
		enabled: func(p dto.PaymentPreferences) bool { return p.Paylah },
		name:    func(p dto.PaymentPreferences) string { return p.PaylahName },
		number:  func(p dto.PaymentPreferences) string { return p.PaylahPhone },
	},
}

// AssemblePaymentMethods emits one row per enabled channel. Absent account
// fields stay unset rather than defaulting; zero enabled channels yields an
// empty result, which is valid.
func AssemblePaymentMethods(prefs dto.PaymentPreferences) []entity.PaymentMethod {
	var methods []entity.PaymentMethod
	for _, channel := range paymentChannels {
		if !channel.enabled(prefs) {
			continue
		}
		method := entity.PaymentMethod{MethodType: channel.label}
		if channel.name != nil {
			method.AccountName = optionalString(channel.name(prefs))
		}
		if channel.number != nil {
			method.AccountNumber = optionalString(channel.number(prefs))
		}
		methods = append(methods, method)
	}
	return methods
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
