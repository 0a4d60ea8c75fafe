package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/futsal-booking/api/internal/dto"
	"github.com/octobees/futsal-booking/api/internal/middleware"
	"github.com/octobees/futsal-booking/api/internal/service"
)

const receiptFormKey = "receiptFile"

var imageKeyPattern = regexp.MustCompile(`^image_(\d+)$`)

// ListingsHandler exposes the listing submission endpoint.
type ListingsHandler struct {
	listings *service.ListingService
}

// NewListingsHandler constructs a ListingsHandler.
func NewListingsHandler(listings *service.ListingService) *ListingsHandler {
	return &ListingsHandler{listings: listings}
}

// Submit handles POST /listings requests. The multipart form is parsed into a
// typed request exactly once here; the pipeline behind it never sees the raw
// form.
func (h *ListingsHandler) Submit(c echo.Context) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return submitFailure(c, http.StatusUnauthorized, "invalid user identity")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return submitFailure(c, http.StatusBadRequest, "request body must be multipart form data")
	}

	req, err := parseSubmitForm(form)
	if err != nil {
		return submitFailure(c, http.StatusBadRequest, err.Error())
	}

	resp, err := h.listings.Submit(c.Request().Context(), ownerID, req)
	if err != nil {
		var validationErr service.ValidationError
		if errors.As(err, &validationErr) {
			return submitFailure(c, http.StatusBadRequest, validationErr.Message)
		}
		var uploadErr service.UploadError
		if errors.As(err, &uploadErr) {
			return submitFailure(c, http.StatusBadRequest, uploadErr.Error())
		}

		log.Printf("request_id=%s listing submission failed: %v", middleware.RequestIDFromContext(c), err)
		return submitFailure(c, http.StatusBadRequest, "unable to create listing")
	}

	return c.JSON(http.StatusOK, resp)
}

func submitFailure(c echo.Context, status int, message string) error {
	return c.JSON(status, dto.SubmitListingFailure{Success: false, Error: message})
}

func ownerFromContext(c echo.Context) (uuid.UUID, error) {
	raw, _ := c.Get(middleware.ContextKeyUserID).(string)
	return uuid.Parse(raw)
}

func parseSubmitForm(form *multipart.Form) (*dto.SubmitListingRequest, error) {
	req := &dto.SubmitListingRequest{
		BusinessName:        formValue(form, "businessName"),
		StreetAddress:       formValue(form, "streetAddress"),
		Town:                formValue(form, "town"),
		Province:            formValue(form, "province"),
		NearestBusStop:      formValue(form, "nearestBusStop"),
		NearestTrainStation: formValue(form, "nearestTrainStation"),
		GoogleMapLocation:   formValue(form, "googleMapLocation"),
		Facebook:            formValue(form, "facebook"),
		Tiktok:              formValue(form, "tiktok"),
		InfoWebsite:         formValue(form, "infoWebsite"),
		PriceCurrency:       formValue(form, "priceCurrency"),
		PosLitePrice:        formValue(form, "posLitePrice"),
		ServiceListingPrice: formValue(form, "serviceListingPrice"),
		PosLiteOption:       formValue(form, "posLiteOption"),
		PhoneNumber:         formValue(form, "phoneNumber"),
		BookingStartTime:    formValue(form, "bookingStartTime"),
		BookingEndTime:      formValue(form, "bookingEndTime"),
		Description:         formValue(form, "description"),
		Facilities:          formValue(form, "facilities"),
		Rules:               formValue(form, "rules"),
		PopularProducts:     formValue(form, "popularProducts"),
		FieldType:           formValue(form, "fieldType"),
	}

	var err error
	if req.NumberOfFields, err = formInt(form, "numberOfFields"); err != nil {
		return nil, err
	}
	if req.MaxCapacity, err = formInt(form, "maxCapacity"); err != nil {
		return nil, err
	}

	if err := formJSON(form, "fieldDetails", &req.FieldDetails); err != nil {
		return nil, err
	}
	if err := formJSON(form, "operatingHours", &req.OperatingHours); err != nil {
		return nil, err
	}
	if err := formJSON(form, "paymentMethods", &req.PaymentMethods); err != nil {
		return nil, err
	}

	if req.Images, err = collectImages(form); err != nil {
		return nil, err
	}
	if req.Receipt, err = readOptionalFile(form, receiptFormKey); err != nil {
		return nil, err
	}

	return req, nil
}

func formValue(form *multipart.Form, key string) string {
	values := form.Value[key]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func formInt(form *multipart.Form, key string) (int, error) {
	raw := formValue(form, key)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", key)
	}
	return value, nil
}

func formJSON(form *multipart.Form, key string, target any) error {
	raw := formValue(form, key)
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	// Unknown keys are ignored so older servers keep accepting submissions
	// from newer form clients.
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("invalid %s payload", key)
	}
	return nil
}

// collectImages gathers every image_<n> file part ordered by its numeric
// suffix, so client upload order survives Go's randomized map iteration.
func collectImages(form *multipart.Form) ([]dto.Attachment, error) {
	type indexedFile struct {
		index  int
		header *multipart.FileHeader
	}

	var files []indexedFile
	for key, headers := range form.File {
		match := imageKeyPattern.FindStringSubmatch(key)
		if match == nil || len(headers) == 0 {
			continue
		}
		index, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		files = append(files, indexedFile{index: index, header: headers[0]})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].index < files[j].index })

	images := make([]dto.Attachment, 0, len(files))
	for _, file := range files {
		att, err := readAttachment(file.header)
		if err != nil {
			return nil, fmt.Errorf("unable to read image_%d", file.index)
		}
		images = append(images, att)
	}
	return images, nil
}

func readOptionalFile(form *multipart.Form, key string) (*dto.Attachment, error) {
	headers := form.File[key]
	if len(headers) == 0 {
		return nil, nil
	}
	att, err := readAttachment(headers[0])
	if err != nil {
		return nil, fmt.Errorf("unable to read %s", key)
	}
	return &att, nil
}

func readAttachment(header *multipart.FileHeader) (dto.Attachment, error) {
	file, err := header.Open()
	if err != nil {
		return dto.Attachment{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return dto.Attachment{}, err
	}

	return dto.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
