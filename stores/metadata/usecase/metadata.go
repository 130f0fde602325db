package usecase

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	bValidator "github.com/farbarter/goapi/base/validator"
	"github.com/farbarter/goapi/domain"
)

type MetadataUseCaseCfg struct {
	WebResource domain.WebResourceUseCase
	Validate    *validator.Validate
}

type metadataUseCase struct {
	webResource domain.WebResourceUseCase
	validate    *validator.Validate
}

// listingMetadataDoc uses pointers so that false, 0 and "" count as present.
type listingMetadataDoc struct {
	ImageUrl    *string `json:"imageUrl"`
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Supply      *uint64 `json:"supply" validate:"required"`
	Location    *string `json:"location" validate:"required"`
	IsOnline    *bool   `json:"isOnline" validate:"required"`
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	v := cfg.Validate
	if v == nil {
		v = bValidator.New()
	}
	return &metadataUseCase{
		webResource: cfg.WebResource,
		validate:    v,
	}
}

func (u *metadataUseCase) ResolveMetadata(c bCtx.Ctx, pointer string) (*domain.ListingMetadata, error) {
	if strings.TrimSpace(pointer) == "" {
		return nil, domain.NewPermanentResolutionError(domain.MetadataFetchFailure, xerrors.New("listing has no metadata pointer"))
	}

	data, err := u.webResource.GetJson(c, pointer)
	if err != nil {
		c.WithFields(log.Fields{
			"pointer": pointer,
			"err":     err,
		}).Error("webResource.GetJson failed")
		switch {
		case errors.Is(err, domain.ErrInvalidJsonFormat):
			return nil, domain.NewPermanentResolutionError(domain.MetadataParseFailure, err)
		case errors.Is(err, domain.ErrUnsupportedSchema):
			return nil, domain.NewPermanentResolutionError(domain.MetadataFetchFailure, err)
		}
		return nil, domain.NewResolutionError(domain.MetadataFetchFailure, err)
	}

	metadata, err := u.parse(data)
	if err != nil {
		c.WithFields(log.Fields{
			"pointer": pointer,
			"err":     err,
		}).Error("failed to parse metadata")
		return nil, domain.NewPermanentResolutionError(domain.MetadataParseFailure, err)
	}
	return metadata, nil
}

func (u *metadataUseCase) parse(data []byte) (*domain.ListingMetadata, error) {
	doc := &listingMetadataDoc{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, xerrors.Errorf("json.Unmarshal failed: %w", err)
	}
	if err := u.validate.Struct(doc); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			missing := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				missing = append(missing, fe.Field())
			}
			return nil, xerrors.Errorf("missing fields %s", strings.Join(missing, ", "))
		}
		return nil, err
	}
	metadata := &domain.ListingMetadata{
		Name:        *doc.Name,
		Description: *doc.Description,
		Supply:      *doc.Supply,
		Location:    *doc.Location,
		IsOnline:    *doc.IsOnline,
	}
	if doc.ImageUrl != nil {
		metadata.ImageUrl = *doc.ImageUrl
	}
	return metadata, nil
}
