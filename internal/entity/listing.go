package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatusToBeConfirmed is the initial payment state of every new business.
const PaymentStatusToBeConfirmed = "to_be_confirmed"

// Business is the profile record owning a listed facility.
type Business struct {
	ID                  uuid.UUID  `json:"id"`
	OwnerID             uuid.UUID  `json:"owner_id"`
	Name                string     `json:"name"`
	Address             string     `json:"address"`
	Towns               string     `json:"towns"`
	ProvinceDistrict    string     `json:"province_district"`
	GoogleMapLocation   *string    `json:"google_map_location,omitempty"`
	FacebookPage        *string    `json:"facebook_page,omitempty"`
	TiktokURL           *string    `json:"tiktok_url,omitempty"`
	Website             *string    `json:"website,omitempty"`
	NearestBusStop      *string    `json:"nearest_bus_stop,omitempty"`
	NearestTrainStation *string    `json:"nearest_train_station,omitempty"`
	PriceCurrency       *string    `json:"price_currency,omitempty"`
	PosLitePrice        *string    `json:"pos_lite_price,omitempty"`
	ServiceListingPrice *string    `json:"service_listing_price,omitempty"`
	LitePos             *int       `json:"lite_pos,omitempty"`
	LitePosExpired      *time.Time `json:"lite_pos_expired,omitempty"`
	PaymentStatus       string     `json:"payment_status"`
	SearchableBusiness  bool       `json:"searchable_business"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Service is the category-tagged offering descriptor for a business.
type Service struct {
	ID                    uuid.UUID `json:"id"`
	CategoryID            uuid.UUID `json:"category_id"`
	ServiceKey            string    `json:"service_key"`
	PopularProducts       *string   `json:"popular_products,omitempty"`
	Description           string    `json:"services_description"`
	Facilities            *string   `json:"facilities,omitempty"`
	Rules                 *string   `json:"rules,omitempty"`
	Images                []string  `json:"service_images"`
	ContactPhone          *string   `json:"contact_phone,omitempty"`
	ContactAvailableStart *string   `json:"contact_available_start,omitempty"`
	ContactAvailableUntil *string   `json:"contact_available_until,omitempty"`
	ReceiptURL            *string   `json:"service_listing_receipt,omitempty"`
	ListingExpired        time.Time `json:"service_listing_expired"`
	DefaultDurationMin    int       `json:"default_duration_min"`
	CreatedAt             time.Time `json:"created_at"`
}

// Resource is the concrete bookable unit within a service.
type Resource struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	ServiceID   uuid.UUID `json:"service_id"`
	Name        string    `json:"name"`
	MaxCapacity int       `json:"max_capacity"`
	BasePrice   float64   `json:"base_price"`
	FieldType   string    `json:"field_type"`
}

// Slot is one bookable price tier under a resource. Start and end times are
// placeholders at creation; real scheduling assigns them later.
type Slot struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	Name       string    `json:"slot_name"`
	Price      float64   `json:"slot_price"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	IsBooked   bool      `json:"is_booked"`
}

// Schedule is one open weekday for a resource. Closed days have no row.
type Schedule struct {
	ResourceID uuid.UUID `json:"resource_id"`
	DayOfWeek  int       `json:"day_of_week"` // 1 = Monday .. 7 = Sunday
	IsOpen     bool      `json:"is_open"`
	OpenTime   string    `json:"open_time"`
	CloseTime  string    `json:"close_time"`
}

// PaymentMethod is one accepted payment channel for a business.
type PaymentMethod struct {
	BusinessID    uuid.UUID `json:"business_id"`
	MethodType    string    `json:"method_type"`
	AccountName   *string   `json:"account_name,omitempty"`
	AccountNumber *string   `json:"account_number,omitempty"`
}

// ServiceListing is the flattened read-model row returned by the search
// queries: a service joined to its resource and owning business.
type ServiceListing struct {
	ServiceID        uuid.UUID `json:"service_id"`
	ServiceKey       string    `json:"service_key"`
	Description      string    `json:"description"`
	Images           []string  `json:"service_images"`
	PopularProducts  *string   `json:"popular_products,omitempty"`
	ContactPhone     *string   `json:"contact_phone,omitempty"`
	BusinessID       uuid.UUID `json:"business_id"`
	BusinessName     string    `json:"business_name"`
	Towns            string    `json:"towns"`
	ProvinceDistrict string    `json:"province_district"`
	Address          string    `json:"address"`
	Searchable       bool      `json:"searchable_business"`
	ResourceID       uuid.UUID `json:"resource_id"`
	BasePrice        float64   `json:"base_price"`
	FieldType        string    `json:"field_type"`
	MaxCapacity      int       `json:"max_capacity"`
	CreatedAt        time.Time `json:"created_at"`
}
