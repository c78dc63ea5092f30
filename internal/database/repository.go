package database

import (
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// Repository groups the per-collection repositories over one connection pool.
// Collections share method names, so they are fields rather than embeds.
type Repository struct {
	DB *DB

	Tasks           *TaskRepo
	Members         *MemberRepo
	Admins          *StaffRepo
	ProjectManagers *StaffRepo
	Projects        *ProjectRepo
	Leaves          *LeaveRepo
	DailyTasks      *DailyTaskRepo

	LegacyTasks    *LegacyTable[models.LegacyTask]
	LegacyFinances *LegacyTable[models.LegacyFinance]
	LegacyUsers    *LegacyTable[models.LegacyUser]
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *DB) *Repository {
	return &Repository{
		DB:              db,
		Tasks:           NewTaskRepo(db),
		Members:         NewMemberRepo(db),
		Admins:          NewAdminRepo(db),
		ProjectManagers: NewProjectManagerRepo(db),
		Projects:        NewProjectRepo(db),
		Leaves:          NewLeaveRepo(db),
		DailyTasks:      NewDailyTaskRepo(db),
		LegacyTasks:     NewLegacyTaskTable(db),
		LegacyFinances:  NewLegacyFinanceTable(db),
		LegacyUsers:     NewLegacyUserTable(db),
	}
}
