package dto

import "github.com/google/uuid"

// FieldDetail is one field/court price tier embedded in the submission form.
type FieldDetail struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// OperatingHour is one weekday entry of the 7-element operating hours payload,
// Monday first.
type OperatingHour struct {
	Closed    bool   `json:"closed"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// PaymentPreferences mirrors the payment method toggles of the submission
// form. Each channel is an independent toggle with its own account fields, so
// adding a channel never reshapes the existing ones.
type PaymentPreferences struct {
	Cash        bool   `json:"cash"`
	Wechat      bool   `json:"wechat"`
	WechatName  string `json:"wechatName"`
	WechatPhone string `json:"wechatPhone"`
	Kpay        bool   `json:"kpay"`
	KpayName    string `json:"kpayName"`
	KpayPhone   string `json:"kpayPhone"`
	Paylah      bool   `json:"paylah"`
	PaylahName  string `json:"paylahName"`
	PaylahPhone string `json:"paylahPhone"`
}

// Attachment is one uploaded file read out of the multipart body.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SubmitListingRequest is the typed form of the multipart submission body.
// The handler builds it once at the boundary; nothing downstream touches the
// raw form again.
type SubmitListingRequest struct {
	BusinessName        string
	NumberOfFields      int
	StreetAddress       string
	Town                string
	Province            string
	NearestBusStop      string
	NearestTrainStation string
	GoogleMapLocation   string
	Facebook            string
	Tiktok              string
	InfoWebsite         string
	PriceCurrency       string
	PosLitePrice        string
	ServiceListingPrice string
	PosLiteOption       string
	PhoneNumber         string
	BookingStartTime    string
	BookingEndTime      string
	Description         string
	Facilities          string
	Rules               string
	PopularProducts     string
	MaxCapacity         int
	FieldType           string
	FieldDetails        []FieldDetail
	OperatingHours      []OperatingHour
	PaymentMethods      PaymentPreferences
	Images              []Attachment
	Receipt             *Attachment
}

// SubmitListingResponse is the success envelope of the submission endpoint.
type SubmitListingResponse struct {
	Success    bool      `json:"success"`
	BusinessID uuid.UUID `json:"business_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	ServiceID  uuid.UUID `json:"service_id"`
}

// SubmitListingFailure is the failure envelope of the submission endpoint.
type SubmitListingFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
