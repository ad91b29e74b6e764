// Package cdt matches free-text clinical descriptions against the CDT
// (Code on Dental Procedures and Nomenclature) reference table used for
// billing-code suggestions.
package cdt

// CodeEntry is one row of the CDT reference table.
type CodeEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ReferenceTable is the static CDT table. Read-only after init; safe to
// scan from any goroutine.
var ReferenceTable = []CodeEntry{
	// Diagnostic
	{"D0120", "Periodic oral evaluation - established patient"},
	{"D0140", "Limited oral evaluation - problem focused"},
	{"D0145", "Oral evaluation for a patient under three years of age"},
	{"D0150", "Comprehensive oral evaluation - new or established patient"},
	{"D0160", "Detailed and extensive oral evaluation - problem focused"},
	{"D0170", "Re-evaluation - limited, problem focused"},
	{"D0180", "Comprehensive periodontal evaluation - new or established patient"},
	{"D0210", "Intraoral - comprehensive series of radiographic images"},
	{"D0220", "Intraoral - periapical first radiographic image"},
	{"D0230", "Intraoral - periapical each additional radiographic image"},
	{"D0240", "Intraoral - occlusal radiographic image"},
	{"D0270", "Bitewing - single radiographic image"},
	{"D0272", "Bitewings - two radiographic images"},
	{"D0274", "Bitewings - four radiographic images"},
	{"D0330", "Panoramic radiographic image"},
	{"D0350", "Oral and facial photographic images"},
	{"D0460", "Pulp vitality tests"},
	{"D0470", "Diagnostic casts"},

	// Preventive
	{"D1110", "Prophylaxis cleaning - adult"},
	{"D1120", "Prophylaxis cleaning - child"},
	{"D1206", "Topical application of fluoride varnish"},
	{"D1208", "Topical application of fluoride excluding varnish"},
	{"D1330", "Oral hygiene instructions"},
	{"D1351", "Sealant - per tooth"},
	{"D1352", "Preventive resin restoration in a moderate to high caries risk patient - permanent tooth"},
	{"D1510", "Space maintainer - fixed, unilateral, per quadrant"},
	{"D1516", "Space maintainer - fixed, bilateral, maxillary"},
	{"D1555", "Removal of fixed space maintainer"},

	// Restorative
	{"D2140", "Amalgam restoration - one surface, primary or permanent"},
	{"D2150", "Amalgam restoration - two surfaces, primary or permanent"},
	{"D2160", "Amalgam restoration - three surfaces, primary or permanent"},
	{"D2161", "Amalgam restoration - four or more surfaces, primary or permanent"},
	{"D2330", "Resin-based composite restoration - one surface, anterior"},
	{"D2331", "Resin-based composite restoration - two surfaces, anterior"},
	{"D2332", "Resin-based composite restoration - three surfaces, anterior"},
	{"D2335", "Resin-based composite restoration - four or more surfaces, anterior"},
	{"D2390", "Resin-based composite crown, anterior"},
	{"D2391", "Resin-based composite restoration - one surface, posterior"},
	{"D2392", "Resin-based composite restoration - two surfaces, posterior"},
	{"D2393", "Resin-based composite restoration - three surfaces, posterior"},
	{"D2394", "Resin-based composite restoration - four or more surfaces, posterior"},
	{"D2740", "Crown - porcelain/ceramic"},
	{"D2750", "Crown - porcelain fused to high noble metal"},
	{"D2751", "Crown - porcelain fused to predominantly base metal"},
	{"D2752", "Crown - porcelain fused to noble metal"},
	{"D2790", "Crown - full cast high noble metal"},
	{"D2791", "Crown - full cast predominantly base metal"},
	{"D2920", "Re-cement or re-bond crown"},
	{"D2930", "Prefabricated stainless steel crown - primary tooth"},
	{"D2931", "Prefabricated stainless steel crown - permanent tooth"},
	{"D2940", "Protective restoration (sedative filling)"},
	{"D2950", "Core buildup, including any pins when required"},
	{"D2951", "Pin retention - per tooth, in addition to restoration"},
	{"D2952", "Post and core in addition to crown, indirectly fabricated"},
	{"D2954", "Prefabricated post and core in addition to crown"},
	{"D2960", "Labial veneer (resin laminate) - direct"},
	{"D2962", "Labial veneer (porcelain laminate) - indirect"},

	// Endodontics
	{"D3110", "Pulp cap - direct (excluding final restoration)"},
	{"D3120", "Pulp cap - indirect (excluding final restoration)"},
	{"D3220", "Therapeutic pulpotomy (excluding final restoration)"},
	{"D3221", "Pulpal debridement, primary and permanent teeth"},
	{"D3240", "Pulpal therapy (resorbable filling) - posterior, primary tooth"},
	{"D3310", "Endodontic therapy, anterior tooth (root canal, excluding final restoration)"},
	{"D3320", "Endodontic therapy, premolar tooth (root canal, excluding final restoration)"},
	{"D3330", "Endodontic therapy, molar tooth (root canal, excluding final restoration)"},
	{"D3346", "Retreatment of previous root canal therapy - anterior"},
	{"D3347", "Retreatment of previous root canal therapy - premolar"},
	{"D3348", "Retreatment of previous root canal therapy - molar"},
	{"D3410", "Apicoectomy - anterior"},
	{"D3421", "Apicoectomy - premolar (first root)"},
	{"D3425", "Apicoectomy - molar (first root)"},
	{"D3430", "Retrograde filling - per root"},
	{"D3450", "Root amputation - per root"},

	// Periodontics
	{"D4210", "Gingivectomy or gingivoplasty - four or more contiguous teeth per quadrant"},
	{"D4211", "Gingivectomy or gingivoplasty - one to three contiguous teeth per quadrant"},
	{"D4240", "Gingival flap procedure, including root planing - four or more teeth per quadrant"},
	{"D4249", "Clinical crown lengthening - hard tissue"},
	{"D4260", "Osseous surgery - four or more contiguous teeth per quadrant"},
	{"D4261", "Osseous surgery - one to three contiguous teeth per quadrant"},
	{"D4263", "Bone replacement graft - retained natural tooth - first site in quadrant"},
	{"D4270", "Pedicle soft tissue graft procedure"},
	{"D4273", "Autogenous connective tissue graft procedure"},
	{"D4341", "Periodontal scaling and root planing - four or more teeth per quadrant"},
	{"D4342", "Periodontal scaling and root planing - one to three teeth per quadrant"},
	{"D4346", "Scaling in presence of generalized moderate or severe gingival inflammation"},
	{"D4355", "Full mouth debridement to enable a comprehensive oral evaluation"},
	{"D4381", "Localized delivery of antimicrobial agents into diseased crevicular tissue"},
	{"D4910", "Periodontal maintenance"},

	// Prosthodontics, removable
	{"D5110", "Complete denture - maxillary"},
	{"D5120", "Complete denture - mandibular"},
	{"D5130", "Immediate denture - maxillary"},
	{"D5140", "Immediate denture - mandibular"},
	{"D5211", "Maxillary partial denture - resin base"},
	{"D5212", "Mandibular partial denture - resin base"},
	{"D5213", "Maxillary partial denture - cast metal framework with resin denture bases"},
	{"D5214", "Mandibular partial denture - cast metal framework with resin denture bases"},
	{"D5410", "Adjust complete denture - maxillary"},
	{"D5411", "Adjust complete denture - mandibular"},
	{"D5511", "Repair broken complete denture base, mandibular"},
	{"D5520", "Replace missing or broken teeth - complete denture, each tooth"},
	{"D5730", "Reline complete maxillary denture (direct)"},
	{"D5750", "Reline complete maxillary denture (indirect)"},
	{"D5820", "Interim partial denture (flipper) - maxillary"},

	// Implant services
	{"D6010", "Surgical placement of implant body: endosteal implant"},
	{"D6056", "Prefabricated abutment - includes modification and placement"},
	{"D6057", "Custom fabricated abutment - includes placement"},
	{"D6058", "Abutment supported porcelain/ceramic crown"},
	{"D6065", "Implant supported porcelain/ceramic crown"},
	{"D6100", "Surgical removal of implant body"},

	// Prosthodontics, fixed
	{"D6210", "Pontic - cast high noble metal"},
	{"D6240", "Pontic - porcelain fused to high noble metal"},
	{"D6245", "Pontic - porcelain/ceramic"},
	{"D6740", "Retainer crown - porcelain/ceramic"},
	{"D6750", "Retainer crown - porcelain fused to high noble metal"},
	{"D6930", "Re-cement or re-bond fixed partial denture bridge"},

	// Oral and maxillofacial surgery
	{"D7140", "Extraction, erupted tooth or exposed root (elevation and/or forceps removal)"},
	{"D7210", "Extraction, erupted tooth requiring removal of bone and/or sectioning of tooth"},
	{"D7220", "Removal of impacted tooth - soft tissue"},
	{"D7230", "Removal of impacted tooth - partially bony"},
	{"D7240", "Removal of impacted tooth - completely bony"},
	{"D7241", "Removal of impacted tooth - completely bony, with unusual surgical complications"},
	{"D7250", "Removal of residual tooth roots (cutting procedure)"},
	{"D7270", "Tooth reimplantation and/or stabilization of accidentally evulsed or displaced tooth"},
	{"D7280", "Exposure of an unerupted tooth"},
	{"D7310", "Alveoloplasty in conjunction with extractions - four or more teeth per quadrant"},
	{"D7510", "Incision and drainage of abscess - intraoral soft tissue"},
	{"D7953", "Bone replacement graft for ridge preservation - per site"},
	{"D7960", "Frenulectomy (frenectomy or frenotomy) - separate procedure"},

	// Orthodontics
	{"D8010", "Limited orthodontic treatment of the primary dentition"},
	{"D8020", "Limited orthodontic treatment of the transitional dentition"},
	{"D8030", "Limited orthodontic treatment of the adolescent dentition"},
	{"D8040", "Limited orthodontic treatment of the adult dentition"},
	{"D8070", "Comprehensive orthodontic treatment of the transitional dentition"},
	{"D8080", "Comprehensive orthodontic treatment of the adolescent dentition"},
	{"D8090", "Comprehensive orthodontic treatment of the adult dentition"},
	{"D8210", "Removable appliance therapy"},
	{"D8220", "Fixed appliance therapy"},
	{"D8660", "Pre-orthodontic treatment examination to monitor growth and development"},
	{"D8680", "Orthodontic retention (removal of appliances, construction and placement of retainers)"},
	{"D8690", "Orthodontic treatment (alternative billing to a contract fee)"},

	// Adjunctive general services
	{"D9110", "Palliative (emergency) treatment of dental pain - minor procedure"},
	{"D9120", "Fixed partial denture sectioning"},
	{"D9210", "Local anesthesia not in conjunction with operative or surgical procedures"},
	{"D9215", "Local anesthesia in conjunction with operative or surgical procedures"},
	{"D9222", "Deep sedation/general anesthesia - first 15 minutes"},
	{"D9230", "Inhalation of nitrous oxide/analgesia, anxiolysis"},
	{"D9239", "Intravenous moderate (conscious) sedation/analgesia - first 15 minutes"},
	{"D9310", "Consultation - diagnostic service provided by dentist or physician other than requesting dentist"},
	{"D9430", "Office visit for observation (during regularly scheduled hours) - no other services performed"},
	{"D9440", "Office visit - after regularly scheduled hours"},
	{"D9910", "Application of desensitizing medicament"},
	{"D9911", "Application of desensitizing resin for cervical and/or root surface"},
	{"D9940", "Occlusal guard (night guard), by report"},
	{"D9944", "Occlusal guard - hard appliance, full arch"},
	{"D9951", "Occlusal adjustment - limited"},
	{"D9952", "Occlusal adjustment - complete"},
	{"D9972", "External bleaching - per arch - performed in office"},
	{"D9975", "External bleaching for home application, per arch"},
}
