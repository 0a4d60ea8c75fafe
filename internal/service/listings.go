package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/octobees/futsal-booking/api/internal/dto"
	"github.com/octobees/futsal-booking/api/internal/entity"
	"github.com/octobees/futsal-booking/api/internal/repository"
)

const (
	// listingValidityDays is the lifetime of a paid listing and of the
	// optional lite POS add-on.
	listingValidityDays = 365

	serviceKeyPrefix = "futsal_booking"

	defaultSlotDurationMin = 60

	posLiteAccepted = "accept"
)

// ListingService drives the end-to-end creation of a listing submission:
// validation, media uploads, derived values, then one transactional insert of
// all entity rows in dependency order.
type ListingService struct {
	repo        repository.ListingsRepository
	media       Uploader
	categoryID  uuid.UUID
	phoneRegion string
	now         func() time.Time
}

// NewListingService constructs the submission orchestrator.
func NewListingService(repo repository.ListingsRepository, media Uploader, categoryID uuid.UUID, phoneRegion string) *ListingService {
	return &ListingService{
		repo:        repo,
		media:       media,
		categoryID:  categoryID,
		phoneRegion: phoneRegion,
		now:         time.Now,
	}
}

// Submit materializes one submission. Validation and uploads happen before
// any row is written; the inserts themselves run in a single transaction, so
// a persistence failure leaves no partial listing. Uploaded objects cannot be
// rolled back and are logged for manual cleanup when the inserts fail.
func (s *ListingService) Submit(ctx context.Context, ownerID uuid.UUID, req *dto.SubmitListingRequest) (*dto.SubmitListingResponse, error) {
	if ownerID == uuid.Nil {
		return nil, ValidationError{Message: "submitter identity is required"}
	}
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	basePrice, prices, err := DeriveBasePrice(req.FieldDetails)
	if err != nil {
		return nil, err
	}
	schedules, err := NormalizeOperatingHours(req.OperatingHours)
	if err != nil {
		return nil, err
	}
	methods := AssemblePaymentMethods(req.PaymentMethods)

	imageURLs, err := s.media.UploadImages(ctx, ownerID, req.Images)
	if err != nil {
		return nil, err
	}
	receiptURL, err := s.media.UploadReceipt(ctx, ownerID, req.Receipt)
	if err != nil {
		logOrphanedUploads(imageURLs, nil)
		return nil, err
	}

	now := s.now()
	listingExpired := now.AddDate(0, 0, listingValidityDays)

	var litePos *int
	var litePosExpired *time.Time
	// Anything other than an explicit accept means no add-on.
	if strings.TrimSpace(req.PosLiteOption) == posLiteAccepted {
		accepted := 1
		expired := now.AddDate(0, 0, listingValidityDays)
		litePos, litePosExpired = &accepted, &expired
	}

	input := repository.CreateListingInput{
		Business: entity.Business{
			OwnerID:             ownerID,
			Name:                req.BusinessName,
			Address:             req.StreetAddress,
			Towns:               req.Town,
			ProvinceDistrict:    req.Province,
			GoogleMapLocation:   optionalString(req.GoogleMapLocation),
			FacebookPage:        optionalString(req.Facebook),
			TiktokURL:           optionalString(req.Tiktok),
			Website:             optionalString(NormalizeWebsite(req.InfoWebsite)),
			NearestBusStop:      optionalString(req.NearestBusStop),
			NearestTrainStation: optionalString(req.NearestTrainStation),
			PriceCurrency:       optionalString(req.PriceCurrency),
			PosLitePrice:        optionalString(req.PosLitePrice),
			ServiceListingPrice: optionalString(req.ServiceListingPrice),
			LitePos:             litePos,
			LitePosExpired:      litePosExpired,
			PaymentStatus:       entity.PaymentStatusToBeConfirmed,
			SearchableBusiness:  false,
		},
		Service: entity.Service{
			CategoryID:            s.categoryID,
			PopularProducts:       optionalString(req.PopularProducts),
			Description:           req.Description,
			Facilities:            optionalString(req.Facilities),
			Rules:                 optionalString(req.Rules),
			Images:                imageURLs,
			ContactPhone:          optionalString(NormalizePhone(req.PhoneNumber, s.phoneRegion)),
			ContactAvailableStart: optionalString(req.BookingStartTime),
			ContactAvailableUntil: optionalString(req.BookingEndTime),
			ReceiptURL:            receiptURL,
			ListingExpired:        listingExpired,
			DefaultDurationMin:    defaultSlotDurationMin,
		},
		ServiceKeyPrefix: serviceKeyPrefix,
		Resource: entity.Resource{
			Name:        req.BusinessName,
			MaxCapacity: req.MaxCapacity,
			BasePrice:   basePrice,
			FieldType:   req.FieldType,
		},
		Slots:          buildSlots(req.FieldDetails, prices, now),
		Schedules:      schedules,
		PaymentMethods: methods,
	}

	ids, err := s.repo.CreateListing(ctx, input)
	if err != nil {
		logOrphanedUploads(imageURLs, receiptURL)
		return nil, fmt.Errorf("create listing: %w", err)
	}

	return &dto.SubmitListingResponse{
		Success:    true,
		BusinessID: ids.BusinessID,
		ResourceID: ids.ResourceID,
		ServiceID:  ids.ServiceID,
	}, nil
}

func validateSubmission(req *dto.SubmitListingRequest) error {
	if req == nil {
		return ValidationError{Message: "submission payload is required"}
	}

	required := []struct {
		value string
		name  string
	}{
		{req.BusinessName, "business name"},
		{req.StreetAddress, "street address"},
		{req.Town, "town"},
		{req.Province, "province"},
		{req.Description, "description"},
		{req.FieldType, "field type"},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return ValidationError{Message: fmt.Sprintf("%s is required", field.name)}
		}
	}

	if req.NumberOfFields <= 0 {
		return ValidationError{Message: "number of fields must be a positive number"}
	}
	if req.MaxCapacity <= 0 {
		return ValidationError{Message: "max capacity must be a positive number"}
	}

	return nil
}

// buildSlots pairs each field detail with its parsed price. Slot times are
// placeholders; real scheduling assigns them outside this pipeline.
func buildSlots(fields []dto.FieldDetail, prices []float64, now time.Time) []entity.Slot {
	slots := make([]entity.Slot, 0, len(fields))
	for i, field := range fields {
		slots = append(slots, entity.Slot{
			Name:      strings.TrimSpace(field.Name),
			Price:     prices[i],
			StartTime: now,
			EndTime:   now,
			IsBooked:  false,
		})
	}
	return slots
}

func logOrphanedUploads(imageURLs []string, receiptURL *string) {
	orphaned := append([]string(nil), imageURLs...)
	if receiptURL != nil {
		orphaned = append(orphaned, *receiptURL)
	}
	if len(orphaned) == 0 {
		return
	}
	log.Printf("listing creation failed; uploaded objects pending cleanup: %s", strings.Join(orphaned, ", "))
}
