package summary

// Instruction templates sent to the generation service. The structure and
// variable names below are load-bearing: the parser extracts fields from the
// reply by matching the exact section headers and scalar labels these
// templates prescribe. Do not reword them without updating the parser tables.

const frenchPrompt = `
Vous allez recevoir une transcription brute d'une réunion d'audit en français, contenant un langage oral informel, des mots de remplissage (euh, donc, etc.), des pauses et des discussions hors sujet. Votre tâche est de résumer les informations clés liées à l'audit dans un format structuré et clair, en éliminant tout contenu inutile. Suivez scrupuleusement la structure et les variables fournies ci-dessous, sans modifier les noms des variables ou les champs. Si une information n'est pas mentionnée dans la transcription, indiquez "Non spécifié".

Structure à suivre :
Audit de [Nom de l'entreprise] ([Adresse]) mené du [Date de début] au [Date de fin] selon la norme [Norme].

Type d'audit: [Type]

Auditeur Principal: [Nom]

Responsable de l'audit: [Nom]

Équipe d'audit: [Noms]

Système de gestion: [Type de système]

Non-conformités détectées: [Nombre]

Détails des non-conformités :
- [Processus] ([Exigence]): [Commentaire] (Évaluation: [Note])
...

Documents de référence :
- [Document 1]
...

Activité auditée: [Description]

Processus audités :
- [Processus 1]
...

Points positifs :
- [Point 1]
...

Recommandations générales :
- [Recommandation 1]
...

Résumé : [Phrase résumant l'état général du système de management]

Instructions supplémentaires :
- Ne modifiez pas les noms des variables (par exemple, "[Nom de l'entreprise]", "[Adresse]", etc.). Utilisez-les exactement comme indiqué.
- Si une information est manquante dans la transcription, indiquez "Non spécifié".
- Conservez la structure et l'ordre des sections exactement comme fourni.
- Évitez d'ajouter ou de supprimer des sections ou des variables.
- Assurez-vous que les données extraites de la transcription sont exactes et non interprétées.
- Pour le type d'audit, déduisez "Audit interne" si l'audit est conduit par une équipe interne, sinon précisez selon le contexte.
- Pour le système de gestion, identifiez le type (ex. "santé et sécurité au travail", "qualité", "environnement") basé sur la norme ou le contexte.
`

const englishPrompt = `
You will receive a raw transcription of an audit meeting in English, containing informal spoken language, filler words (um, so, etc.), pauses, and off-topic discussions. Your task is to summarize the key information related to the audit into a structured and clear format, eliminating any unnecessary content. Strictly follow the structure and variables provided below, without modifying the variable names or fields. If information is not mentioned in the transcription, indicate "Not specified".

Structure to follow:
Audit of [Company Name] ([Address]) conducted from [Start Date] to [End Date] according to the [Standard].

Audit Type: [Type]

Lead Auditor: [Name]

Audit Manager: [Name]

Audit Team: [Names]

Management System: [System Type]

Non-conformities detected: [Number]

Details of non-conformities:
- [Process] ([Requirement]): [Comment] (Rating: [Rating])
...

Reference Documents:
- [Document 1]
...

Audited Activity: [Description]

Audited Processes:
- [Process 1]
...

Positive Points:
- [Point 1]
...

General Recommendations:
- [Recommendation 1]
...

Summary: [Sentence summarizing the overall state of the management system]

Additional instructions:
- Do not modify the variable names (e.g., "[Company Name]", "[Address]", etc.). Use them exactly as shown.
- If information is missing in the transcription, indicate "Not specified".
- Keep the structure and order of sections exactly as provided.
- Avoid adding or removing sections or variables.
- Ensure that the data extracted from the transcription is accurate and not interpreted.
- For the audit type, infer "Internal Audit" if the audit is conducted by an internal team, otherwise specify according to the context.
- For the management system, identify the type (e.g., "occupational health and safety", "quality", "environment") based on the standard or context.
`

const frenchSystemMessage = "Vous êtes un assistant spécialisé dans la synthèse de rapports d'audit."
const englishSystemMessage = "You are an assistant specialized in summarizing audit reports."
