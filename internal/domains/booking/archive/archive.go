package archive

//go:generate go run go.uber.org/mock/mockgen -source=./archive.go -destination=./mocks/archive_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"livecity/config"
	"livecity/infras/otel"
	"livecity/infras/s3"
	"livecity/internal/domains/booking/model/dto"
	"livecity/shared/constant"
)

const contractDirectory = "contracts"

// Contract keeps a JSON snapshot of each booking as submitted.
type Contract interface {
	Store(ctx context.Context, booking dto.BookingResponse) (url string, err error)
}

type contractImpl struct {
	storage s3.S3
	enabled bool
	otel    otel.Otel
}

func New(cfg *config.Config, storage s3.S3, otel otel.Otel) Contract {
	return &contractImpl{
		storage: storage,
		enabled: cfg.External.S3.Enable,
		otel:    otel,
	}
}

func (c *contractImpl) Store(ctx context.Context, booking dto.BookingResponse) (url string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".archive.Store")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !c.enabled {
		return constant.Empty, nil
	}

	data, err := json.Marshal(booking)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to encode contract: %w", err)
	}

	url, err = c.storage.Upload(ctx, contractDirectory, booking.ID+".json", constant.ContentTypeJSON, data)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to store contract: %w", err)
	}

	return url, nil
}
