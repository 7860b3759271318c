package constants

// NATS subjects
const (
	// SubjectUpdates carries models.UpdateBroadcast between service instances
	SubjectUpdates = "escort.updates"
	// SubjectSOS carries models.SOSEvent for external emergency handling
	SubjectSOS = "escort.sos"
)
