package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// newUUIDv7AtTime creates a UUIDv7 with a specific timestamp. UUIDv7 format:
// first 48 bits are Unix milliseconds, then version (7), then random bits
// with the variant set. Fixed random bytes keep tests deterministic.
func newUUIDv7AtTime(t time.Time) uuid.UUID {
	var id uuid.UUID

	ms := uint64(t.UnixMilli())
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)

	id[6] = 0x70 | (id[6] & 0x0F) // version 7
	id[8] = 0x80 | (id[8] & 0x3F) // variant 10xx
	id[15] = 0x01

	return id
}

func TestValidateUUIDv7_ValidUUID(t *testing.T) {
	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("uuid.NewV7() failed: %v", err)
	}
	if err := ValidateUUIDv7(id.String()); err != nil {
		t.Errorf("ValidateUUIDv7(%s) = %v, want nil", id.String(), err)
	}
}

func TestValidateUUIDv7_UUIDv4Fails(t *testing.T) {
	id := uuid.New() // uuid.New() generates v4
	err := ValidateUUIDv7(id.String())
	if !errors.Is(err, ErrNotUUIDv7) {
		t.Errorf("ValidateUUIDv7(v4) = %v, want ErrNotUUIDv7", err)
	}
}

func TestValidateUUIDv7_MalformedUUID(t *testing.T) {
	testCases := []string{
		"not-a-uuid",
		"12345",
		"",
		"019471a0-0000-7000-8000-",
	}

	for _, tc := range testCases {
		err := ValidateUUIDv7(tc)
		if !errors.Is(err, ErrInvalidUUID) {
			t.Errorf("ValidateUUIDv7(%q) = %v, want ErrInvalidUUID", tc, err)
		}
	}
}

func TestValidateUUIDv7_FutureTimestamp(t *testing.T) {
	futureID := newUUIDv7AtTime(time.Now().Add(5 * time.Minute))
	err := ValidateUUIDv7(futureID.String())
	if !errors.Is(err, ErrFutureTimestamp) {
		t.Errorf("ValidateUUIDv7(future) = %v, want ErrFutureTimestamp", err)
	}
}

func TestValidateUUIDv7_PastTimestamp(t *testing.T) {
	pastID := newUUIDv7AtTime(time.Now().Add(-24 * time.Hour))
	if err := ValidateUUIDv7(pastID.String()); err != nil {
		t.Errorf("ValidateUUIDv7(past) = %v, want nil", err)
	}
}

func TestValidateUUIDv7_JustUnderOneMinuteFuture(t *testing.T) {
	nearFutureID := newUUIDv7AtTime(time.Now().Add(30 * time.Second))
	if err := ValidateUUIDv7(nearFutureID.String()); err != nil {
		t.Errorf("ValidateUUIDv7(30s future) = %v, want nil", err)
	}
}
