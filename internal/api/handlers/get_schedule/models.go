package get_schedule

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	getSchedule "github.com/m04kA/SMC-GroomingService/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
)

// ToUseCaseRequest собирает запрос из query параметров dateFrom, dateTo, masterId
func ToUseCaseRequest(dateFromStr, dateToStr, masterIDStr string) (*getSchedule.Request, error) {
	dateFrom, err := time.Parse(domain.DateFormat, dateFromStr)
	if err != nil {
		return nil, fmt.Errorf("dateFrom: %w", err)
	}
	dateTo, err := time.Parse(domain.DateFormat, dateToStr)
	if err != nil {
		return nil, fmt.Errorf("dateTo: %w", err)
	}

	req := &getSchedule.Request{DateFrom: dateFrom, DateTo: dateTo}
	if masterIDStr != "" {
		masterID, err := strconv.ParseInt(masterIDStr, 10, 64)
		if err != nil || masterID <= 0 {
			return nil, fmt.Errorf("masterId: invalid value %q", masterIDStr)
		}
		req.MasterID = ptr.Ptr(masterID)
	}
	return req, nil
}
