package constants

// Deployment stages. STAGE selects logging format and CORS strictness.
const (
	StageLocal = "local"
	StageDev   = "dev"
	StageProd  = "prod"
)

// ProdEnvironment is the stage that switches the logger to JSON output.
const ProdEnvironment = StageProd

// DefaultPort is the listen port used when PORT is not set.
const DefaultPort = "8000"

// ServiceName is attached to every structured log line in deployed stages.
const ServiceName = "invoxa-api"

// IsValidStage reports whether stage is one of the known deployment stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageLocal, StageDev, StageProd:
		return true
	}
	return false
}
