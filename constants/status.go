package constants

// JobStatus is the canonical status for rows in detection_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued   JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning  JobStatus = "RUNNING"  // in progress
	JobStatusDetected JobStatus = "DETECTED" // a plate passed the format policy and threshold
	JobStatusNoMatch  JobStatus = "NO_MATCH" // pipeline ran but nothing survived (not a failure)
	JobStatusFailed   JobStatus = "FAILED"   // terminal failure
)

// JobStatuses holds the allowed values for the status field in DetectionJob.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusDetected),
	string(JobStatusNoMatch),
	string(JobStatusFailed),
}
