package events

const (
	SubjectRankingComputed = "catalog.ranking.computed"

	StreamName   = "CATALOG_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

func SubjectDatasetCreated(datasetID string) string { return "catalog.dataset." + datasetID + ".created" }
func SubjectDatasetUpdated(datasetID string) string { return "catalog.dataset." + datasetID + ".updated" }
func SubjectDatasetQuality(datasetID string) string { return "catalog.dataset." + datasetID + ".quality" }
func SubjectDatasetColumns(datasetID string) string { return "catalog.dataset." + datasetID + ".columns" }
