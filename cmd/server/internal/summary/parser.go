package summary

import (
	"regexp"
	"strings"
)

// section tags the parser's position inside the templated reply.
type section int

const (
	sectionNone section = iota
	sectionCompliance
	sectionDocuments
	sectionProcesses
	sectionPositive
	sectionRecommendations
)

// sectionHeader transitions the state machine when a line starts with Prefix.
type sectionHeader struct {
	prefix string
	next   section
}

// languagePack holds the per-language extraction tables. The patterns mirror
// the labels the instruction templates prescribe, so a well-formed reply
// matches every scalar and every section header.
type languagePack struct {
	clientPattern      *regexp.Regexp
	periodPattern      *regexp.Regexp
	standardPattern    *regexp.Regexp
	typePattern        *regexp.Regexp
	auditorPattern     *regexp.Regexp
	managerPattern     *regexp.Regexp
	teamPattern        *regexp.Regexp
	systemPattern      *regexp.Regexp
	nonConformPattern  *regexp.Regexp
	commentRatePattern *regexp.Regexp

	headers        []sectionHeader
	activityPrefix string
	resumePrefix   string

	notSpecified      string
	noInfo            string
	noPositive        string
	noRecommendations string
	noSummary         string
}

// processReqPattern splits a compliance bullet's left side into
// "process (requirement)". Language-independent.
var processReqPattern = regexp.MustCompile(`^(.+?) \((.+?)\)`)

var frenchPack = languagePack{
	clientPattern:     regexp.MustCompile(`Audit de (.+?) \((.+?)\)`),
	periodPattern:     regexp.MustCompile(`mené du (.+?) au (.+?) selon`),
	standardPattern:   regexp.MustCompile(`selon la norme (.+?)\.`),
	typePattern:       regexp.MustCompile(`Type d'audit: (.+)`),
	auditorPattern:    regexp.MustCompile(`Auditeur Principal: (.+)`),
	managerPattern:    regexp.MustCompile(`Responsable de l'audit: (.+)`),
	teamPattern:       regexp.MustCompile(`Équipe d['’]audit: (.+)`),
	systemPattern:     regexp.MustCompile(`Système de gestion: (.+)`),
	nonConformPattern: regexp.MustCompile(`Non-conformités détectées: (\d+)`),
	// the rating marker inside a compliance bullet
	commentRatePattern: regexp.MustCompile(`^(.+?) \(Évaluation: (.+?)\)`),

	headers: []sectionHeader{
		{"Détails des non-conformités :", sectionCompliance},
		{"Documents de référence :", sectionDocuments},
		{"Processus audités :", sectionProcesses},
		{"Points positifs :", sectionPositive},
		{"Recommandations générales :", sectionRecommendations},
	},
	activityPrefix: "Activité auditée:",
	resumePrefix:   "Résumé :",

	notSpecified:      "Non spécifié",
	noInfo:            "Aucune information",
	noPositive:        "Aucun point positif mentionné",
	noRecommendations: "Aucune recommandation fournie",
	noSummary:         "Aucun résumé fourni",
}

var englishPack = languagePack{
	clientPattern:      regexp.MustCompile(`Audit of (.+?) \((.+?)\)`),
	periodPattern:      regexp.MustCompile(`conducted from (.+?) to (.+?) according`),
	standardPattern:    regexp.MustCompile(`according to the (.+?)\.`),
	typePattern:        regexp.MustCompile(`Audit Type: (.+)`),
	auditorPattern:     regexp.MustCompile(`Lead Auditor: (.+)`),
	managerPattern:     regexp.MustCompile(`Audit Manager: (.+)`),
	teamPattern:        regexp.MustCompile(`Audit Team: (.+)`),
	systemPattern:      regexp.MustCompile(`Management System: (.+)`),
	nonConformPattern:  regexp.MustCompile(`Non-conformities detected: (\d+)`),
	commentRatePattern: regexp.MustCompile(`^(.+?) \(Rating: (.+?)\)`),

	headers: []sectionHeader{
		{"Details of non-conformities:", sectionCompliance},
		{"Reference Documents:", sectionDocuments},
		{"Audited Processes:", sectionProcesses},
		{"Positive Points:", sectionPositive},
		{"General Recommendations:", sectionRecommendations},
	},
	activityPrefix: "Audited Activity:",
	resumePrefix:   "Summary:",

	notSpecified:      "Not specified",
	noInfo:            "No information",
	noPositive:        "No positive points mentioned",
	noRecommendations: "No recommendations provided",
	noSummary:         "No summary provided",
}

func packFor(language string) languagePack {
	if language == "en" {
		return englishPack
	}
	return frenchPack
}

// parseRecord extracts the structured record from a templated reply. It never
// fails: a missing pattern degrades to a placeholder and a malformed section
// yields a single-element placeholder list.
func parseRecord(reply, language string) *AuditRecord {
	pack := packFor(language)
	rec := &AuditRecord{}

	rec.ClientName, rec.ClientAddress = extractPair(pack.clientPattern, reply, pack.notSpecified)

	start, end := extractPair(pack.periodPattern, reply, pack.notSpecified)
	rec.AuditPeriod = start + " - " + end

	rec.ReferenceStandard = extractOne(pack.standardPattern, reply, pack.notSpecified)
	rec.AuditType = extractOne(pack.typePattern, reply, pack.notSpecified)
	rec.AuditorName = extractOne(pack.auditorPattern, reply, pack.notSpecified)
	rec.AuditManager = extractOne(pack.managerPattern, reply, pack.notSpecified)
	rec.AuditTeamMembers = extractOne(pack.teamPattern, reply, pack.notSpecified)
	rec.ManagementSystem = extractOne(pack.systemPattern, reply, pack.notSpecified)
	rec.NonConformitiesCount = extractOne(pack.nonConformPattern, reply, "0")

	state := sectionNone
	for _, rawLine := range strings.Split(reply, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if next, ok := matchHeader(pack.headers, line); ok {
			state = next
			continue
		}
		if strings.HasPrefix(line, pack.activityPrefix) {
			rec.ActivityDescription = strings.TrimSpace(strings.TrimPrefix(line, pack.activityPrefix))
			continue
		}
		if strings.HasPrefix(line, pack.resumePrefix) {
			rec.Resume = strings.TrimSpace(strings.TrimPrefix(line, pack.resumePrefix))
			continue
		}

		if state == sectionCompliance && strings.HasPrefix(line, "-") {
			rec.ComplianceItems = append(rec.ComplianceItems, parseComplianceBullet(line, pack))
			continue
		}
		if strings.HasPrefix(line, "- ") {
			item := strings.TrimSpace(line[2:])
			switch state {
			case sectionDocuments:
				rec.ReferenceDocuments = append(rec.ReferenceDocuments, item)
			case sectionProcesses:
				rec.ProcessesList = append(rec.ProcessesList, item)
			case sectionPositive:
				rec.PositivePoints = append(rec.PositivePoints, item)
			case sectionRecommendations:
				rec.Recommendations = append(rec.Recommendations, item)
			}
		}
	}

	applyPlaceholders(rec, pack)
	return rec
}

func matchHeader(headers []sectionHeader, line string) (section, bool) {
	for _, h := range headers {
		if strings.HasPrefix(line, h.prefix) {
			return h.next, true
		}
	}
	return sectionNone, false
}

// parseComplianceBullet decomposes "- process (requirement): comment
// (rating marker: value)" with fallback to whole-string placement when the
// finer patterns fail.
func parseComplianceBullet(line string, pack languagePack) ComplianceItem {
	content := strings.TrimSpace(strings.TrimPrefix(line, "-"))

	left, right := content, ""
	if idx := strings.Index(content, ":"); idx >= 0 {
		left = strings.TrimSpace(content[:idx])
		right = strings.TrimSpace(content[idx+1:])
	}

	item := ComplianceItem{
		Process:     left,
		Requirement: pack.notSpecified,
		Comment:     right,
		Rating:      pack.notSpecified,
	}
	if m := processReqPattern.FindStringSubmatch(left); m != nil {
		item.Process = m[1]
		item.Requirement = m[2]
	}
	if m := pack.commentRatePattern.FindStringSubmatch(right); m != nil {
		item.Comment = m[1]
		item.Rating = m[2]
	}
	return item
}

// applyPlaceholders enforces the never-empty policy on the parsed record so
// the report renderer never receives an empty container.
func applyPlaceholders(rec *AuditRecord, pack languagePack) {
	if len(rec.ReferenceDocuments) == 0 {
		rec.ReferenceDocuments = []string{pack.notSpecified}
	}
	if rec.ActivityDescription == "" {
		rec.ActivityDescription = pack.notSpecified
	}
	if len(rec.ProcessesList) == 0 {
		rec.ProcessesList = []string{pack.notSpecified}
	}
	if len(rec.ComplianceItems) == 0 {
		rec.ComplianceItems = []ComplianceItem{{
			Process:     pack.notSpecified,
			Requirement: "N/A",
			Comment:     pack.noInfo,
			Rating:      "N/A",
		}}
	}
	if len(rec.PositivePoints) == 0 {
		rec.PositivePoints = []string{pack.noPositive}
	}
	if len(rec.Recommendations) == 0 {
		rec.Recommendations = []string{pack.noRecommendations}
	}
	if rec.Resume == "" {
		rec.Resume = pack.noSummary
	}
}

func extractOne(re *regexp.Regexp, text, fallback string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return fallback
}

func extractPair(re *regexp.Regexp, text, fallback string) (string, string) {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return fallback, fallback
}
