package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"water-advisor/internal/model"
)

type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrUsage means /audit did not get exactly four arguments.
	ErrUsage = constError("usage: /audit <family size> <shower minutes> <laundry loads per week> <Yes|No>")

	// ErrInvalidNumber means one of the numeric arguments did not parse
	// or was not finite.
	ErrInvalidNumber = constError("invalid number")
)

// ParseAuditArgs turns "/audit" arguments such as "4 10 5 Yes" into a
// request. The RO answer is passed through untouched; only "Yes" counts.
func ParseAuditArgs(args string) (*model.AuditRequest, error) {
	fields := strings.Fields(args)
	if len(fields) != 4 {
		return nil, ErrUsage
	}

	familySize, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w for family size: %q", ErrInvalidNumber, fields[0])
	}

	shower, err := model.ParseFinite(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w for shower minutes: %q", ErrInvalidNumber, fields[1])
	}

	laundry, err := model.ParseFinite(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w for laundry loads: %q", ErrInvalidNumber, fields[2])
	}

	return &model.AuditRequest{
		FamilySize:          familySize,
		ShowerMinutes:       shower,
		LaundryLoadsPerWeek: laundry,
		ROPurifier:          fields[3],
	}, nil
}
