package gstn_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/registry/gstn"
)

func TestClient_ReturnsByGSTIN_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/taxpayers/29ABCDE1234F1Z5/returns", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"EFiledlist":[
			{"rtntype":"GSTR1","taxp":"042024","fy":"2024-25","dof":"2024-05-10","status":"Filed"},
			{"rtntype":"GSTR3B","taxp":"042024","fy":"2024-25","dof":"","status":"Not Filed"}
		]}`))
	}))
	defer srv.Close()

	client := gstn.NewClientWithBaseURL(&config.RegistryConfig{APIKey: "secret"}, srv.URL)

	records, err := client.ReturnsByGSTIN(context.Background(), "29ABCDE1234F1Z5")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "GSTR1", records[0].ReturnType)
	assert.Equal(t, "Filed", records[0].Status)
	assert.Equal(t, "Not Filed", records[1].Status)
}

func TestClient_ReturnsByGSTIN_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := gstn.NewClientWithBaseURL(&config.RegistryConfig{}, srv.URL)

	records, err := client.ReturnsByGSTIN(context.Background(), "29ABCDE1234F1Z5")
	assert.Nil(t, records)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_ReturnsByGSTIN_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := gstn.NewClientWithBaseURL(&config.RegistryConfig{}, srv.URL)

	records, err := client.ReturnsByGSTIN(context.Background(), "29ABCDE1234F1Z5")
	assert.Nil(t, records)
	assert.ErrorIs(t, err, domain.ErrRegistryUnavailable)
}
