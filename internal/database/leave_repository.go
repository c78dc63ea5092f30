package database

import (
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// LeaveRepo handles all leave-related database operations
type LeaveRepo struct {
	table[models.Leave, models.NewLeave, models.LeavePatch]
}

var leaveColumns = []string{
	"id", "user_id", "leave_date", "from_date", "to_date", "end_date", "leave_type",
	"reason", "status", "approved_by", "approved_at", "notes", "is_half_day",
	"category", "brief_description", "created_at", "updated_at",
}

// NewLeaveRepo binds the leaves collection to db
func NewLeaveRepo(db *DB) *LeaveRepo {
	return &LeaveRepo{table[models.Leave, models.NewLeave, models.LeavePatch]{
		db: db,
		spec: tableSpec[models.Leave, models.NewLeave, models.LeavePatch]{
			name:    models.CollectionLeaves,
			columns: leaveColumns,
			orderBy: "created_at DESC",
			scan:    scanLeave,
			insert:  leaveInsert,
			patch:   leavePatch,
		},
	}}
}

func scanLeave(row rowScanner) (*models.Leave, error) {
	l := &models.Leave{}
	err := row.Scan(
		&l.ID, &l.UserID, &l.LeaveDate, &l.FromDate, &l.ToDate, &l.EndDate, &l.LeaveType,
		&l.Reason, &l.Status, &l.ApprovedBy, nullTimestamp{&l.ApprovedAt}, &l.Notes, &l.IsHalfDay,
		&l.Category, &l.BriefDescription, timestamp{&l.CreatedAt}, timestamp{&l.UpdatedAt},
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func leaveInsert(d Dialect, in models.NewLeave) (columnSet, error) {
	var set columnSet
	status := in.Status
	if status == "" {
		status = models.LeaveStatusPending
	}
	set.add("user_id", in.UserID)
	set.add("leave_date", in.LeaveDate)
	set.add("from_date", in.FromDate)
	set.add("to_date", in.ToDate)
	set.add("end_date", in.EndDate)
	set.add("leave_type", string(in.LeaveType))
	set.add("reason", in.Reason)
	set.add("status", string(status))
	set.add("approved_by", in.ApprovedBy)
	set.add("approved_at", d.NullTimestamp(in.ApprovedAt))
	set.add("notes", in.Notes)
	set.add("is_half_day", in.IsHalfDay)
	set.add("category", in.Category)
	set.add("brief_description", in.BriefDescription)
	return set, nil
}

func leavePatch(d Dialect, p models.LeavePatch) (columnSet, error) {
	var set columnSet
	if p.UserID != nil {
		set.add("user_id", *p.UserID)
	}
	if p.LeaveDate != nil {
		set.add("leave_date", *p.LeaveDate)
	}
	if p.FromDate != nil {
		set.add("from_date", *p.FromDate)
	}
	if p.ToDate != nil {
		set.add("to_date", *p.ToDate)
	}
	if p.EndDate != nil {
		set.add("end_date", *p.EndDate)
	}
	if p.LeaveType != nil {
		set.add("leave_type", string(*p.LeaveType))
	}
	if p.Reason != nil {
		set.add("reason", *p.Reason)
	}
	if p.Status != nil {
		set.add("status", string(*p.Status))
	}
	if p.ApprovedBy != nil {
		set.add("approved_by", *p.ApprovedBy)
	}
	if p.ApprovedAt != nil {
		set.add("approved_at", d.Timestamp(*p.ApprovedAt))
	}
	if p.Notes != nil {
		set.add("notes", *p.Notes)
	}
	if p.IsHalfDay != nil {
		set.add("is_half_day", *p.IsHalfDay)
	}
	if p.Category != nil {
		set.add("category", *p.Category)
	}
	if p.BriefDescription != nil {
		set.add("brief_description", *p.BriefDescription)
	}
	return set, nil
}
