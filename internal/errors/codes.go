package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// API consumers map these codes to their own messages.

const (
	// ==================== configuration (CONFIG_) ====================
	ConfigInvalidCount    = "CONFIG_INVALID_COUNT"    // requested row count not positive
	ConfigInvalidSchedule = "CONFIG_INVALID_SCHEDULE" // cron expression did not parse
	ConfigMissingValue    = "CONFIG_MISSING_VALUE"    // required setting absent

	// ==================== generation (GENERATE_) ====================
	GenerateFailed          = "GENERATE_FAILED"            // run aborted, no output produced
	GenerateNoStaffedStores = "GENERATE_NO_STAFFED_STORES" // no store has an employee to sell from
	GenerateEmptyTable      = "GENERATE_EMPTY_TABLE"       // dependent parent table empty

	// ==================== export (EXPORT_) ====================
	ExportFailed       = "EXPORT_FAILED"        // could not write output files
	ExportUploadFailed = "EXPORT_UPLOAD_FAILED" // S3 upload failed

	// ==================== runs (RUN_) ====================
	RunNotFound   = "RUN_NOT_FOUND"   // no completed run yet
	RunInProgress = "RUN_IN_PROGRESS" // a run is already executing

	// ==================== internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // unexpected failure
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // database failure
)
