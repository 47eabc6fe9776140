// Package membership keeps the per-member task-reference lists embedded in
// project membership entries consistent with the tasks table. The functions
// mutate in-memory ProjectMember values; callers persist the touched rows in
// the same transaction as the task write.
package membership

import "github.com/crewstack/project-management-api/internal/models"

// Attach appends taskID to the member's task list. It reports whether the
// list changed; re-attaching an already present reference is a no-op.
func Attach(member *models.ProjectMember, taskID uint64) bool {
	if member == nil || Holds(member, taskID) {
		return false
	}
	member.TaskIDs = append(member.TaskIDs, taskID)
	return true
}

// Detach removes taskID from the member's task list. Absence is not an
// error; it reports whether the list changed.
func Detach(member *models.ProjectMember, taskID uint64) bool {
	if member == nil {
		return false
	}
	for i, id := range member.TaskIDs {
		if id == taskID {
			member.TaskIDs = append(member.TaskIDs[:i], member.TaskIDs[i+1:]...)
			return true
		}
	}
	return false
}

// Move transfers taskID from one member to another. Passing the same entry
// for both sides leaves the list unchanged.
func Move(from, to *models.ProjectMember, taskID uint64) {
	if from == to {
		return
	}
	Detach(from, taskID)
	Attach(to, taskID)
}

// Holds reports whether the member's task list contains taskID.
func Holds(member *models.ProjectMember, taskID uint64) bool {
	if member == nil {
		return false
	}
	for _, id := range member.TaskIDs {
		if id == taskID {
			return true
		}
	}
	return false
}

// Holder returns the membership entry whose task list contains taskID, or
// nil if no entry holds it.
func Holder(members []models.ProjectMember, taskID uint64) *models.ProjectMember {
	for i := range members {
		if Holds(&members[i], taskID) {
			return &members[i]
		}
	}
	return nil
}

// EntryFor returns the membership entry new assignments should attach to
// for the given user. When the user sits in both lists the worker entry
// wins, so admin entries only accumulate refs for pure admins.
func EntryFor(members []models.ProjectMember, userID uint64) *models.ProjectMember {
	var admin *models.ProjectMember
	for i := range members {
		if members[i].UserID != userID {
			continue
		}
		if members[i].Role == models.MemberRoleWorker {
			return &members[i]
		}
		admin = &members[i]
	}
	return admin
}
