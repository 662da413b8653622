package store

import (
	"context"
	"dan_assistant/internal/models"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	cases := []struct {
		key   string
		value interface{}
	}{
		{KeyAdminAuth, models.DefaultAdminAuth()},
		{KeyAgentConfig, models.DefaultAgentConfig()},
		{KeyOrders, models.SeedOrders()},
		{KeyLastCustomer, models.LastCustomer{Name: "أحمد محمد", Phone: "0912345678", Address: "الخرطوم"}},
		{KeyPriceList, models.DefaultPriceList},
	}

	for _, tc := range cases {
		data, err := json.Marshal(tc.value)
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.key, err)
		}
		if err := st.Set(ctx, tc.key, data); err != nil {
			t.Fatalf("%s: set: %v", tc.key, err)
		}

		got, err := st.Get(ctx, tc.key)
		if err != nil {
			t.Fatalf("%s: get: %v", tc.key, err)
		}

		decoded := reflect.New(reflect.TypeOf(tc.value)).Interface()
		if err := json.Unmarshal(got, decoded); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.key, err)
		}
		if !reflect.DeepEqual(reflect.ValueOf(decoded).Elem().Interface(), tc.value) {
			t.Errorf("%s: round trip mismatch", tc.key)
		}
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	st := NewMemoryStore()
	if _, err := st.Get(context.Background(), "nothing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	if err := st.Set(ctx, KeyPriceList, []byte("first")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Set(ctx, KeyPriceList, []byte("second")); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := st.Get(ctx, KeyPriceList)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	original := []byte("value")
	if err := st.Set(ctx, "k", original); err != nil {
		t.Fatalf("set: %v", err)
	}
	original[0] = 'x'

	got, err := st.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "value" {
		t.Fatalf("caller mutation leaked into store: %q", got)
	}
	got[0] = 'y'

	again, _ := st.Get(ctx, "k")
	if string(again) != "value" {
		t.Fatalf("returned slice aliases stored value: %q", again)
	}
}
