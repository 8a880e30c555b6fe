package report

// stringsTable holds every piece of fixed report text for one language.
type stringsTable struct {
	headerTitle string
	pageOf      string
	revision    string

	coverTitle     string
	coverSubtitle  string
	coverClient    string
	coverAddress   string
	coverPeriod    string
	coverStandard  string
	reportTypeHead string
	reportTypeItem string
	reportDate     string
	auditManager   string

	tocTitle   string
	tocEntries [7]string

	section1       string
	labelClient    string
	labelSite      string
	labelAuditor   string
	labelStandard  string
	labelType      string
	labelPeriod    string
	labelManager   string
	labelTeam      string
	summaryText    string
	nonConfText    string
	signatureDate  string
	signatureRole  string

	section2      string
	objectiveText string
	docsIntro     string
	domainHead    string
	domainText    string
	processIntro  string

	section3     string
	approachText string

	section4         string
	complianceHeader [4]string

	section5          string
	positiveHead      string
	improvementHead   string

	section6        string
	conclusionParas [4]string

	section7  string
	endOfText string

	notSpecified string
}

var frenchStrings = stringsTable{
	headerTitle: "Rapport d'Audit Interne",
	pageOf:      "Page %d sur {nb}",
	revision:    "Rev. 1.0 (%s)",

	coverTitle:     "RAPPORT D'AUDIT INTERNE",
	coverSubtitle:  "SYSTÈME DE MANAGEMENT",
	coverClient:    "CLIENT",
	coverAddress:   "ADRESSE",
	coverPeriod:    "PÉRIODE D'AUDIT",
	coverStandard:  "RÉFÉRENTIEL",
	reportTypeHead: "TYPE DE RAPPORT:",
	reportTypeItem: "[X]  Rapport d'audit interne",
	reportDate:     "Date du rapport: %s",
	auditManager:   "Responsable d'audit: ",

	tocTitle: "TABLE DES MATIÈRES",
	tocEntries: [7]string{
		"1. Evaluation Sommaire",
		"2. Objectif, Base et Domaine d'Application de l'Audit",
		"3. Approche de l'Audit Interne",
		"4. Evaluation de la Conformité par Rapport au Référentiel",
		"5. Points Positifs / Potentiel d'Amélioration",
		"6. Conclusion",
		"7. Remarques Générales",
	},

	section1:      "1. Evaluation Sommaire",
	labelClient:   "Client",
	labelSite:     "Site d'audit",
	labelAuditor:  "Chargé(e) d'audit",
	labelStandard: "Référentiel",
	labelType:     "Type Audit",
	labelPeriod:   "Période Audit",
	labelManager:  "Resp. d'audit",
	labelTeam:     "Equipe d'audit",
	summaryText: "Dans le cadre d'un audit interne de l'entreprise %s, sise %s a fourni " +
		"l'évidence qu'elle a implémenté et améliore un système de management de %s " +
		"partiellement conforme aux référentiels mentionnés ci-dessus.",
	nonConfText:   "%s Non-conformités dans différents chapitres de la norme ont été détectées et documentées dans ce rapport.",
	signatureDate: "Date",
	signatureRole: "Resp. d'audit",

	section2: "2. Objectif, Base et Domaine d'Application de l'Audit",
	objectiveText: "L'objectif de l'audit était de vérifier que les exigences des référentiels " +
		"relatifs au système de management de %s sont satisfaites et que les conditions de " +
		"fonctionnement sont remplies.",
	docsIntro:    "Les documents suivants ont constitué la base de l'audit :",
	domainHead:   "Domaine d'application",
	domainText:   "L'audit concerne le site sis à %s, pour l'activité %s.",
	processIntro: "Processus inclus :",

	section3: "3. Approche de l'Audit Interne",
	approachText: "L'audit a été réalisé par échantillonnage, en vérifiant la conformité des " +
		"processus par des entretiens et l'examen des documents.",

	section4:         "4. Evaluation de la Conformité par Rapport au Référentiel",
	complianceHeader: [4]string{"Processus", "Exigence", "Commentaire", "Evaluation"},

	section5:        "5. Points Positifs / Potentiel d'Amélioration",
	positiveHead:    "Points positifs :",
	improvementHead: "Potentiel d'Amélioration :",

	section6: "6. Conclusion",
	conclusionParas: [4]string{
		"Aucun élément n'a été détecté au cours de l'audit qui puisse remettre en cause les affirmations suivantes.",
		"Les objectifs de l'audit ont été atteints.",
		"L'auditeur a détecté %s non-conformités dans plusieurs chapitres des référentiels.",
		"La conformité aux exigences de la norme %s a été vérifiée et confirmée.",
	},

	section7:  "7. Remarques Générales",
	endOfText: "Fin du rapport.",

	notSpecified: "Non spécifié",
}

var englishStrings = stringsTable{
	headerTitle: "Internal Audit Report",
	pageOf:      "Page %d of {nb}",
	revision:    "Rev. 1.0 (%s)",

	coverTitle:     "INTERNAL AUDIT REPORT",
	coverSubtitle:  "MANAGEMENT SYSTEM",
	coverClient:    "CLIENT",
	coverAddress:   "ADDRESS",
	coverPeriod:    "AUDIT PERIOD",
	coverStandard:  "STANDARD",
	reportTypeHead: "REPORT TYPE:",
	reportTypeItem: "[X]  Internal audit report",
	reportDate:     "Report date: %s",
	auditManager:   "Audit manager: ",

	tocTitle: "TABLE OF CONTENTS",
	tocEntries: [7]string{
		"1. Summary Evaluation",
		"2. Objective, Basis and Scope of the Audit",
		"3. Internal Audit Approach",
		"4. Evaluation of Compliance with the Standard",
		"5. Positive Points / Improvement Potential",
		"6. Conclusion",
		"7. General Remarks",
	},

	section1:      "1. Summary Evaluation",
	labelClient:   "Client",
	labelSite:     "Audit site",
	labelAuditor:  "Auditor",
	labelStandard: "Standard",
	labelType:     "Audit type",
	labelPeriod:   "Audit period",
	labelManager:  "Audit manager",
	labelTeam:     "Audit team",
	summaryText: "During an internal audit of the company %s, located at %s, evidence was " +
		"provided that it has implemented and improves a %s management system partially " +
		"compliant with the standards mentioned above.",
	nonConfText:   "%s non-conformities across different chapters of the standard were detected and documented in this report.",
	signatureDate: "Date",
	signatureRole: "Audit manager",

	section2: "2. Objective, Basis and Scope of the Audit",
	objectiveText: "The objective of the audit was to verify that the requirements of the " +
		"standards relating to the %s management system are satisfied and that the operating " +
		"conditions are met.",
	docsIntro:    "The following documents formed the basis of the audit:",
	domainHead:   "Scope",
	domainText:   "The audit concerns the site located at %s, for the activity %s.",
	processIntro: "Processes included:",

	section3: "3. Internal Audit Approach",
	approachText: "The audit was carried out by sampling, verifying process compliance through " +
		"interviews and document review.",

	section4:         "4. Evaluation of Compliance with the Standard",
	complianceHeader: [4]string{"Process", "Requirement", "Comment", "Rating"},

	section5:        "5. Positive Points / Improvement Potential",
	positiveHead:    "Positive points:",
	improvementHead: "Improvement potential:",

	section6: "6. Conclusion",
	conclusionParas: [4]string{
		"No element was detected during the audit that could call into question the following statements.",
		"The objectives of the audit were achieved.",
		"The auditor detected %s non-conformities across several chapters of the standards.",
		"Compliance with the requirements of the %s standard was verified and confirmed.",
	},

	section7:  "7. General Remarks",
	endOfText: "End of report.",

	notSpecified: "Not specified",
}

func stringsFor(language string) stringsTable {
	if language == "en" {
		return englishStrings
	}
	return frenchStrings
}
