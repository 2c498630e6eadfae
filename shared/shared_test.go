package shared_test

import (
	"context"
	"errors"
	"livecity/shared"
	cacheMocks "livecity/shared/cache/mocks"
	"livecity/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(5, 0))
	assert.Equal(t, 3, shared.CalculateTotalPage(21, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(20, 10))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc", "id", "bookings")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, "abc", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:abc", shared.BuildCacheKey("booking:get", "abc"))
	assert.Equal(t, "booking:gets", shared.BuildCacheKey("booking:gets"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	first := shared.FilterByID("a", "id", "bookings")
	second := shared.FilterByID("b", "id", "bookings")

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, first)
	keyAAgain := shared.BuildCacheKeyWithQuery("booking:gets", params, first)
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", params, second)

	assert.Equal(t, keyA, keyAAgain)
	assert.NotEqual(t, keyA, keyB)
	assert.Contains(t, keyA, "booking:gets:1:10")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "booking:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "booking:count").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "booking:count")
}
