package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kindoblue/jakarta10-tutoring/internal/model"
	"github.com/kindoblue/jakarta10-tutoring/internal/repository"
)

// ── export module business errors ──

var (
	ErrExportNoFloors     = errors.New("no floors to export")
	ErrExportGenerateFail = errors.New("failed to generate Excel file")
)

// ExportService renders the seating roster as an Excel workbook, one
// sheet per floor. The buffer is returned to the handler, which sets
// the download headers and streams it.
type ExportService interface {
	ExportSeating(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportSeating(ctx context.Context) (*bytes.Buffer, string, error) {
	floors, err := s.repo.Floor.List(ctx)
	if err != nil {
		s.logger.Error("list floors failed", zap.Error(err))
		return nil, "", err
	}
	if len(floors) == 0 {
		return nil, "", ErrExportNoFloors
	}

	f := excelize.NewFile()
	defer f.Close()

	for i := range floors {
		if err := s.writeFloorSheet(ctx, f, &floors[i], i == 0); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write excel buffer failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("seating-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// writeFloorSheet renders one floor as a sheet of room / seat /
// assignee rows. The first floor reuses the default sheet.
func (s *exportService) writeFloorSheet(ctx context.Context, f *excelize.File, floor *model.Floor, first bool) error {
	sheet := fmt.Sprintf("Floor %d", floor.FloorNumber)
	if first {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return ErrExportGenerateFail
		}
	} else {
		if _, err := f.NewSheet(sheet); err != nil {
			return ErrExportGenerateFail
		}
	}

	header := []interface{}{"Room", "Seat", "Assigned employees", "Occupied"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return ErrExportGenerateFail
	}

	rooms, err := s.repo.Room.ListByFloor(ctx, floor.FloorID)
	if err != nil {
		s.logger.Error("list rooms failed", zap.String("floor_id", floor.FloorID), zap.Error(err))
		return err
	}

	row := 2
	for i := range rooms {
		seats, err := s.repo.Seat.ListByRoom(ctx, rooms[i].RoomID)
		if err != nil {
			s.logger.Error("list seats failed", zap.String("room_id", rooms[i].RoomID), zap.Error(err))
			return err
		}

		for j := range seats {
			names := make([]string, 0, len(seats[j].Employees))
			for k := range seats[j].Employees {
				names = append(names, seats[j].Employees[k].FullName)
			}

			occupied := "no"
			if len(names) > 0 {
				occupied = "yes"
			}

			cells := []interface{}{
				fmt.Sprintf("%s (%s)", rooms[i].Name, rooms[i].RoomNumber),
				seats[j].SeatNumber,
				strings.Join(names, ", "),
				occupied,
			}
			cell := fmt.Sprintf("A%d", row)
			if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
				return ErrExportGenerateFail
			}
			row++
		}
	}

	return nil
}
