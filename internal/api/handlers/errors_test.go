package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: master=1", ordering.ErrSlotOccupied), http.StatusConflict},
		{domain.NewError("dup", domain.ErrDuplicate), http.StatusConflict},
		{domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{catalog.ErrMasterNotFound, http.StatusBadRequest},
		{catalog.ErrTariffNotFound, http.StatusBadRequest},
		{domain.NewError("order not found", domain.ErrNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusForError(tt.err), "err=%v", tt.err)
	}
}

func TestMessageFor(t *testing.T) {
	err := fmt.Errorf("resolve: %w", catalog.ErrPetSizeRequired)
	assert.Equal(t, "для этой породы нужно указать размер питомца", MessageFor(err, "fallback", OrderErrorMessages))

	own := []ErrorMessage{{catalog.ErrPetSizeRequired, "своё"}}
	assert.Equal(t, "своё", MessageFor(err, "fallback", own, OrderErrorMessages))
	assert.Equal(t, "fallback", MessageFor(errors.New("x"), "fallback", OrderErrorMessages))
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusConflict, "занято")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"code":409,"message":"занято"}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Буся"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Буся", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Буся","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(req, &dst))
}
