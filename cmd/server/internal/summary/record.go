// Package summary turns a raw audit transcription into a structured audit
// record by prompting a remote text-generation service and parsing its
// templated reply.
package summary

// ComplianceItem is one detected non-conformity.
type ComplianceItem struct {
	Process     string `json:"process"`
	Requirement string `json:"requirement"`
	Comment     string `json:"comment"`
	Rating      string `json:"rating"`
}

// AuditRecord is the structured view of a summarized audit. Scalar fields
// default to a language-appropriate "not specified" placeholder; list fields
// always hold at least one placeholder element.
type AuditRecord struct {
	ClientName           string           `json:"client_name"`
	ClientAddress        string           `json:"client_address"`
	AuditPeriod          string           `json:"audit_period"`
	ReferenceStandard    string           `json:"reference_standard"`
	AuditType            string           `json:"audit_type"`
	AuditorName          string           `json:"auditor_name"`
	AuditManager         string           `json:"audit_manager"`
	AuditTeamMembers     string           `json:"audit_team_members"`
	ManagementSystem     string           `json:"management_system"`
	NonConformitiesCount string           `json:"non_conformities_count"`
	ComplianceItems      []ComplianceItem `json:"compliance_items"`
	ReferenceDocuments   []string         `json:"reference_documents"`
	ActivityDescription  string           `json:"activity_description"`
	ProcessesList        []string         `json:"processes_list"`
	PositivePoints       []string         `json:"positive_points"`
	Recommendations      []string         `json:"recommendations"`
	Resume               string           `json:"resume"`
}

// Result pairs the raw service reply with its parsed record.
type Result struct {
	Summary string       `json:"summary"`
	Record  *AuditRecord `json:"structured_data"`
}
