// Package wire provides dependency injection for the labops application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/labops/internal/adapters/sqlite"
	"github.com/example/labops/internal/app"
	"github.com/example/labops/internal/db"
	"github.com/example/labops/internal/ports/primary"
)

var (
	importService    primary.ImportService
	lifecycleService primary.LifecycleService
	gridService      primary.GridService
	scheduleService  primary.ScheduleService
	rosterService    primary.RosterService
	mappingService   primary.MappingService
	reportService    primary.ReportService
	once             sync.Once
)

// ImportService returns the singleton ImportService instance.
func ImportService() primary.ImportService {
	once.Do(initServices)
	return importService
}

// LifecycleService returns the singleton LifecycleService instance.
func LifecycleService() primary.LifecycleService {
	once.Do(initServices)
	return lifecycleService
}

// GridService returns the singleton GridService instance.
func GridService() primary.GridService {
	once.Do(initServices)
	return gridService
}

// ScheduleService returns the singleton ScheduleService instance.
func ScheduleService() primary.ScheduleService {
	once.Do(initServices)
	return scheduleService
}

// RosterService returns the singleton RosterService instance.
func RosterService() primary.RosterService {
	once.Do(initServices)
	return rosterService
}

// MappingService returns the singleton MappingService instance.
func MappingService() primary.MappingService {
	once.Do(initServices)
	return mappingService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	groupRepo := sqlite.NewTaskGroupRepository(database)
	assignRepo := sqlite.NewAssignedTaskRepository(database)
	prepareRepo := sqlite.NewPrepareTaskRepository(database)
	testerRepo := sqlite.NewTesterRepository(database)
	mappingRepo := sqlite.NewMappingRepository(database)
	scheduleRepo := sqlite.NewScheduleRepository(database)
	reportRepo := sqlite.NewShiftReportRepository(database)

	importService = app.NewImportService(groupRepo)
	lifecycleService = app.NewLifecycleService(groupRepo, assignRepo, prepareRepo, testerRepo)
	gridService = app.NewGridService(groupRepo, assignRepo, prepareRepo, mappingRepo, testerRepo)
	scheduleService = app.NewScheduleService(scheduleRepo, testerRepo)
	rosterService = app.NewRosterService(testerRepo)
	mappingService = app.NewMappingService(mappingRepo)
	reportService = app.NewReportService(reportRepo)
}
