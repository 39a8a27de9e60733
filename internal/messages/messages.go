// Package messages centralizes the user-facing strings, upstream endpoint
// templates, and sentinel values shared by the page controllers. Pure data.
package messages

// User management.
const (
	UserNotFound             = "User not found"
	NoUserSelectedForDelete  = "No user selected for deletion"
	UserDeletedSuccessfully  = "User deleted successfully"
	PasswordResetEmailSent   = "Password reset email sent successfully"
	PleaseFillRequiredFields = "Please fill in all required fields"
	UserAddedSuccessfully    = "User added successfully"
	UserUpdatedSuccessfully  = "User updated successfully"
	FailedToUpdateUser       = "Failed to update user. Please try again."
	UsersDataNotAvailable    = "Users data not available"
	UserActivated            = "User activated successfully"
	UserDeactivated          = "User deactivated successfully"
)

// Attendance.
const (
	UserLoginRequired      = "User not found. Please refresh the page and ensure you are logged in."
	ClockedInSuccessfully  = "Successfully clocked in!"
	ClockedOutSuccessfully = "Successfully clocked out!"
	ErrorClockingIn        = "Error clocking in. Please try again."
	ErrorClockingOut       = "Error clocking out. Please try again."
)

// Leave management.
const (
	LeaveRequestSubmitted    = "Leave request submitted successfully!"
	LeaveRequestCancelled    = "Leave request cancelled successfully!"
	LeaveRequestNotFound     = "Leave request not found"
	FailedToLoadLeaveDetails = "Failed to load leave request details. Please try again."
	FailedToSubmitLeave      = "Failed to submit leave request"
	NoLeaveRequests          = `No leave requests found. Click "Apply for Leave" to create your first request.`
)

// Generic.
const (
	ErrorPrefix          = "Error: "
	UnknownErrorOccurred = "Unknown error occurred"
	CancelledStatus      = "Cancelled"
	NotAvailable         = "N/A"
	Never                = "Never"
	QuestionMarks        = "??"
)

// Response envelope status values. Callers branch on these, never on the
// HTTP status code alone: the backend is known to answer 200 with an
// error-shaped body.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Leave statuses and periods as the backend spells them.
const (
	LeaveStatusPending   = "PENDING"
	LeaveStatusCancelled = "CANCELLED"
	LeavePeriodAM        = "AM"
	LeavePeriodPM        = "PM"
	LeavePeriodFullDay   = "FULL_DAY"
)

// Status display text.
const (
	Active   = "Active"
	Inactive = "Inactive"
)

// Modal titles.
const (
	EditLeaveRequestTitle = "Edit Leave Request"
	ApplyForLeaveTitle    = "Apply for Leave"
)

// Loading labels shown on in-flight submit buttons in the original UI.
const (
	DeletingLabel      = "Deleting..."
	AddingUserLabel    = "Adding User..."
	SavingChangesLabel = "Saving Changes..."
)

// Attendance display sentinels.
const (
	NotRecorded      = "Not recorded"
	NoRecord         = "No record"
	InPrefix         = "In: "
	TimeSeparator    = " - "
	TimeNotAvailable = "--:--:--"
	DateNotAvailable = "-"
)

// ReasonTruncateLength is the display cutoff for leave reasons; longer
// reasons are cut and suffixed with ReasonTruncateSuffix.
const (
	ReasonTruncateLength = 50
	ReasonTruncateSuffix = "..."
)

// Upstream endpoint templates, relative to the API base URL.
const (
	EndpointClockIn           = "/api/attendance/clock-in?userId=%d"
	EndpointClockOut          = "/api/attendance/clock-out?userId=%d"
	EndpointAttendanceToday   = "/api/attendance/today/%d"
	EndpointAttendanceHistory = "/api/attendance/history/%d"
	EndpointLeaveApply  = "/api/leave/apply"
	EndpointLeaveUser   = "/api/leave/user/%d"
	EndpointLeaveByID   = "/api/leave/%d"
	EndpointLeaveUpdate = "/api/leave/%d/update"
	EndpointLeaveCancel = "/api/leave/%d/cancel?userId=%d"
	EndpointUsers       = "/api/users"
	EndpointUserByID    = "/api/users/%d"
	EndpointUserEnable  = "/api/users/%d/activate"
	EndpointUserDisable = "/api/users/%d/deactivate"
	EndpointUserPasswd  = "/api/users/%d/password"
)

// Format tags accepted by timeutil.FormatTimestamp.
const (
	FormatMonthDayYear = "MMM dd, yyyy"
	FormatWeekday      = "EEEE"
	FormatTimeSeconds  = "HH:mm:ss"
	FormatTimeMinutes  = "HH:mm"
)
