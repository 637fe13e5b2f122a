package bodyzone

// defaultDefinitions is the fixed anatomical knowledge base the registry is
// built from at startup. Parent/child links are declared on both sides and
// cross-checked by newRegistry; the tree is never mutated after load.
var defaultDefinitions = []*Definition{
	// ── Head ──
	{
		ID:       "head",
		Label:    Label{EN: "Head", AR: "الرأس"},
		Category: CategoryHead,
		Priority: 8,
		ChildIDs: []string{"head.forehead", "head.temples", "head.occiput", "head.face"},
	},
	{
		ID:       "head.forehead",
		Label:    Label{EN: "Forehead", AR: "الجبهة"},
		Category: CategoryHead,
		Priority: 7,
		Terminal: true,
		ParentID: "head",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"tension headache", "frontal sinusitis", "migraine"},
			RedFlags:        []string{"worst headache of life", "headache with fever and neck stiffness"},
			CodingRefs:      []string{"ICD-10:R51", "SNOMED:52795006"},
		},
	},
	{
		ID:       "head.temples",
		Label:    Label{EN: "Temples", AR: "الصدغان"},
		Category: CategoryHead,
		Priority: 8,
		Terminal: true,
		ParentID: "head",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"migraine", "temporal arteritis", "cluster headache"},
			RedFlags:        []string{"sudden thunderclap headache", "jaw claudication with visual change"},
			CodingRefs:      []string{"ICD-10:G43.909", "SNOMED:25064002"},
		},
	},
	{
		ID:       "head.occiput",
		Label:    Label{EN: "Back of head", AR: "مؤخرة الرأس"},
		Category: CategoryHead,
		Priority: 6,
		Terminal: true,
		ParentID: "head",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"occipital neuralgia", "cervicogenic headache"},
			CodingRefs:      []string{"ICD-10:M54.81", "SNOMED:279084008"},
		},
	},
	{
		ID:       "head.face",
		Label:    Label{EN: "Face", AR: "الوجه"},
		Category: CategoryHead,
		Priority: 6,
		Terminal: true,
		ParentID: "head",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"sinusitis", "trigeminal neuralgia", "dental abscess"},
			RedFlags:        []string{"sudden one-sided facial droop"},
			CodingRefs:      []string{"ICD-10:R29.810", "SNOMED:89545001"},
		},
	},

	// ── Neck ──
	{
		ID:       "neck",
		Label:    Label{EN: "Neck", AR: "الرقبة"},
		Category: CategoryNeck,
		Priority: 7,
		ChildIDs: []string{"neck.front", "neck.back"},
	},
	{
		ID:       "neck.front",
		Label:    Label{EN: "Front of neck", AR: "مقدمة الرقبة"},
		Category: CategoryNeck,
		Priority: 8,
		Terminal: true,
		ParentID: "neck",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"pharyngitis", "thyroiditis", "lymphadenitis"},
			RedFlags:        []string{"difficulty breathing or swallowing", "rapidly enlarging neck swelling"},
			CodingRefs:      []string{"ICD-10:R07.0", "SNOMED:45048000"},
		},
	},
	{
		ID:       "neck.back",
		Label:    Label{EN: "Back of neck", AR: "خلف الرقبة"},
		Category: CategoryNeck,
		Priority: 6,
		Terminal: true,
		ParentID: "neck",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"cervical strain", "cervical radiculopathy"},
			RedFlags:        []string{"neck stiffness with fever"},
			CodingRefs:      []string{"ICD-10:M54.2", "SNOMED:81680005"},
		},
	},

	// ── Chest ──
	{
		ID:       "chest",
		Label:    Label{EN: "Chest", AR: "الصدر"},
		Category: CategoryChest,
		Priority: 10,
		ChildIDs: []string{"chest.sternum", "chest.left_parasternal", "chest.right_parasternal", "chest.left_lateral", "chest.right_lateral"},
	},
	{
		ID:       "chest.sternum",
		Label:    Label{EN: "Center of chest (sternum)", AR: "منتصف الصدر (القص)"},
		Category: CategoryChest,
		Priority: 10,
		Terminal: true,
		ParentID: "chest",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"acute coronary syndrome", "GERD", "costochondritis"},
			RedFlags:        []string{"crushing central chest pressure", "pain radiating to arm or jaw", "chest pain with sweating and nausea"},
			CodingRefs:      []string{"ICD-10:R07.2", "SNOMED:29857009"},
		},
	},
	{
		ID:       "chest.left_parasternal",
		Label:    Label{EN: "Left side of chest", AR: "الجانب الأيسر من الصدر"},
		Category: CategoryChest,
		Priority: 10,
		Terminal: true,
		ParentID: "chest",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"acute coronary syndrome", "pericarditis", "angina pectoris"},
			RedFlags:        []string{"crushing pressure radiating to left arm", "chest pain with shortness of breath", "chest pain with syncope"},
			CodingRefs:      []string{"ICD-10:R07.89", "SNOMED:29857009"},
		},
	},
	{
		ID:       "chest.right_parasternal",
		Label:    Label{EN: "Right side of chest", AR: "الجانب الأيمن من الصدر"},
		Category: CategoryChest,
		Priority: 8,
		Terminal: true,
		ParentID: "chest",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"pleurisy", "pneumonia", "musculoskeletal strain"},
			RedFlags:        []string{"pleuritic pain with breathlessness", "chest pain after long immobility"},
			CodingRefs:      []string{"ICD-10:R07.81", "SNOMED:29857009"},
		},
	},
	{
		ID:       "chest.left_lateral",
		Label:    Label{EN: "Left lateral chest wall", AR: "الجدار الجانبي الأيسر للصدر"},
		Category: CategoryChest,
		Priority: 8,
		Terminal: true,
		ParentID: "chest",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"rib contusion", "intercostal neuralgia", "pleurisy"},
			RedFlags:        []string{"sharp pain worsening with each breath"},
			CodingRefs:      []string{"ICD-10:R07.81", "SNOMED:302551006"},
		},
	},
	{
		ID:       "chest.right_lateral",
		Label:    Label{EN: "Right lateral chest wall", AR: "الجدار الجانبي الأيمن للصدر"},
		Category: CategoryChest,
		Priority: 7,
		Terminal: true,
		ParentID: "chest",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"rib contusion", "muscle strain", "gallbladder referred pain"},
			CodingRefs:      []string{"ICD-10:R07.81", "SNOMED:302551006"},
		},
	},

	// ── Abdomen (three-level: abdomen → upper/lower → region) ──
	{
		ID:       "abdomen",
		Label:    Label{EN: "Abdomen", AR: "البطن"},
		Category: CategoryAbdomen,
		Priority: 7,
		ChildIDs: []string{"abdomen.upper", "abdomen.lower"},
	},
	{
		ID:       "abdomen.upper",
		Label:    Label{EN: "Upper abdomen", AR: "أعلى البطن"},
		Category: CategoryAbdomen,
		Priority: 8,
		ParentID: "abdomen",
		ChildIDs: []string{"abdomen.upper.epigastric", "abdomen.upper.right_hypochondrium"},
	},
	{
		ID:       "abdomen.upper.epigastric",
		Label:    Label{EN: "Upper middle abdomen (epigastric)", AR: "أعلى منتصف البطن (الشرسوفية)"},
		Category: CategoryAbdomen,
		Priority: 8,
		Terminal: true,
		ParentID: "abdomen.upper",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"gastritis", "peptic ulcer", "pancreatitis"},
			RedFlags:        []string{"severe pain boring through to the back", "pain with vomiting blood"},
			CodingRefs:      []string{"ICD-10:R10.13", "SNOMED:27947004"},
		},
	},
	{
		ID:       "abdomen.upper.right_hypochondrium",
		Label:    Label{EN: "Upper right abdomen", AR: "أعلى يمين البطن"},
		Category: CategoryAbdomen,
		Priority: 7,
		Terminal: true,
		ParentID: "abdomen.upper",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"cholecystitis", "biliary colic", "hepatitis"},
			RedFlags:        []string{"pain with fever and yellowing of the eyes"},
			CodingRefs:      []string{"ICD-10:R10.11", "SNOMED:63018001"},
		},
	},
	{
		ID:       "abdomen.lower",
		Label:    Label{EN: "Lower abdomen", AR: "أسفل البطن"},
		Category: CategoryAbdomen,
		Priority: 6,
		ParentID: "abdomen",
		ChildIDs: []string{"abdomen.lower.right_iliac", "abdomen.lower.left_iliac", "abdomen.lower.suprapubic"},
	},
	{
		ID:       "abdomen.lower.right_iliac",
		Label:    Label{EN: "Lower right abdomen", AR: "أسفل يمين البطن"},
		Category: CategoryAbdomen,
		Priority: 8,
		Terminal: true,
		ParentID: "abdomen.lower",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"appendicitis", "ovarian cyst", "mesenteric adenitis"},
			RedFlags:        []string{"migrating pain with fever and rigid abdomen"},
			CodingRefs:      []string{"ICD-10:R10.31", "SNOMED:48544008"},
		},
	},
	{
		ID:       "abdomen.lower.left_iliac",
		Label:    Label{EN: "Lower left abdomen", AR: "أسفل يسار البطن"},
		Category: CategoryAbdomen,
		Priority: 6,
		Terminal: true,
		ParentID: "abdomen.lower",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"diverticulitis", "constipation", "irritable bowel syndrome"},
			CodingRefs:      []string{"ICD-10:R10.32", "SNOMED:68505006"},
		},
	},
	{
		ID:       "abdomen.lower.suprapubic",
		Label:    Label{EN: "Lower middle abdomen (suprapubic)", AR: "أسفل منتصف البطن (فوق العانة)"},
		Category: CategoryAbdomen,
		Priority: 5,
		Terminal: true,
		ParentID: "abdomen.lower",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"cystitis", "urinary retention", "dysmenorrhea"},
			CodingRefs:      []string{"ICD-10:R10.30", "SNOMED:34402009"},
		},
	},

	// ── Back ──
	{
		ID:       "back",
		Label:    Label{EN: "Back", AR: "الظهر"},
		Category: CategoryBack,
		Priority: 5,
		ChildIDs: []string{"back.upper", "back.lower"},
	},
	{
		ID:       "back.upper",
		Label:    Label{EN: "Upper back", AR: "أعلى الظهر"},
		Category: CategoryBack,
		Priority: 6,
		Terminal: true,
		ParentID: "back",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"muscle strain", "thoracic spine dysfunction"},
			RedFlags:        []string{"tearing pain between the shoulder blades"},
			CodingRefs:      []string{"ICD-10:M54.6", "SNOMED:77568009"},
		},
	},
	{
		ID:       "back.lower",
		Label:    Label{EN: "Lower back", AR: "أسفل الظهر"},
		Category: CategoryBack,
		Priority: 5,
		Terminal: true,
		ParentID: "back",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"lumbar strain", "sciatica", "disc herniation"},
			RedFlags:        []string{"back pain with loss of bladder or bowel control", "back pain with leg weakness"},
			CodingRefs:      []string{"ICD-10:M54.5", "SNOMED:279039007"},
		},
	},

	// ── Pelvis ──
	{
		ID:       "pelvis",
		Label:    Label{EN: "Pelvis", AR: "الحوض"},
		Category: CategoryPelvis,
		Priority: 6,
		ChildIDs: []string{"pelvis.groin_left", "pelvis.groin_right"},
	},
	{
		ID:       "pelvis.groin_left",
		Label:    Label{EN: "Left groin", AR: "الأربية اليسرى"},
		Category: CategoryPelvis,
		Priority: 5,
		Terminal: true,
		ParentID: "pelvis",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"inguinal hernia", "muscle strain", "lymphadenopathy"},
			CodingRefs:      []string{"ICD-10:R10.30", "SNOMED:255569009"},
		},
	},
	{
		ID:       "pelvis.groin_right",
		Label:    Label{EN: "Right groin", AR: "الأربية اليمنى"},
		Category: CategoryPelvis,
		Priority: 5,
		Terminal: true,
		ParentID: "pelvis",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"inguinal hernia", "muscle strain", "lymphadenopathy"},
			CodingRefs:      []string{"ICD-10:R10.30", "SNOMED:255570005"},
		},
	},

	// ── Upper limb ──
	{
		ID:       "arm",
		Label:    Label{EN: "Arm", AR: "الذراع"},
		Category: CategoryUpperLimb,
		Priority: 4,
		ChildIDs: []string{"arm.shoulder_left", "arm.shoulder_right", "arm.elbow", "arm.wrist_hand"},
	},
	{
		ID:       "arm.shoulder_left",
		Label:    Label{EN: "Left shoulder", AR: "الكتف الأيسر"},
		Category: CategoryUpperLimb,
		Priority: 6,
		Terminal: true,
		ParentID: "arm",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"rotator cuff injury", "frozen shoulder", "referred cardiac pain"},
			RedFlags:        []string{"left shoulder pain with chest pressure"},
			CodingRefs:      []string{"ICD-10:M25.512", "SNOMED:91775009"},
		},
	},
	{
		ID:       "arm.shoulder_right",
		Label:    Label{EN: "Right shoulder", AR: "الكتف الأيمن"},
		Category: CategoryUpperLimb,
		Priority: 4,
		Terminal: true,
		ParentID: "arm",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"rotator cuff injury", "frozen shoulder", "referred gallbladder pain"},
			CodingRefs:      []string{"ICD-10:M25.511", "SNOMED:91774008"},
		},
	},
	{
		ID:       "arm.elbow",
		Label:    Label{EN: "Elbow", AR: "المرفق"},
		Category: CategoryUpperLimb,
		Priority: 3,
		Terminal: true,
		ParentID: "arm",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"tennis elbow", "olecranon bursitis"},
			CodingRefs:      []string{"ICD-10:M25.529", "SNOMED:16953009"},
		},
	},
	{
		ID:       "arm.wrist_hand",
		Label:    Label{EN: "Wrist and hand", AR: "المعصم واليد"},
		Category: CategoryUpperLimb,
		Priority: 3,
		Terminal: true,
		ParentID: "arm",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"carpal tunnel syndrome", "wrist sprain", "arthritis"},
			CodingRefs:      []string{"ICD-10:M25.539", "SNOMED:74670003"},
		},
	},

	// ── Lower limb ──
	{
		ID:       "leg",
		Label:    Label{EN: "Leg", AR: "الساق"},
		Category: CategoryLowerLimb,
		Priority: 4,
		ChildIDs: []string{"leg.hip", "leg.knee_left", "leg.knee_right", "leg.calf", "leg.ankle_foot"},
	},
	{
		ID:       "leg.hip",
		Label:    Label{EN: "Hip", AR: "الورك"},
		Category: CategoryLowerLimb,
		Priority: 4,
		Terminal: true,
		ParentID: "leg",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"hip osteoarthritis", "trochanteric bursitis"},
			CodingRefs:      []string{"ICD-10:M25.559", "SNOMED:29836001"},
		},
	},
	{
		ID:       "leg.knee_left",
		Label:    Label{EN: "Left knee", AR: "الركبة اليسرى"},
		Category: CategoryLowerLimb,
		Priority: 3,
		Terminal: true,
		ParentID: "leg",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"knee osteoarthritis", "meniscal injury", "patellofemoral pain"},
			CodingRefs:      []string{"ICD-10:M25.562", "SNOMED:82169009"},
		},
	},
	{
		ID:       "leg.knee_right",
		Label:    Label{EN: "Right knee", AR: "الركبة اليمنى"},
		Category: CategoryLowerLimb,
		Priority: 3,
		Terminal: true,
		ParentID: "leg",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"knee osteoarthritis", "meniscal injury", "patellofemoral pain"},
			CodingRefs:      []string{"ICD-10:M25.561", "SNOMED:6757004"},
		},
	},
	{
		ID:       "leg.calf",
		Label:    Label{EN: "Calf", AR: "ربلة الساق"},
		Category: CategoryLowerLimb,
		Priority: 7,
		Terminal: true,
		ParentID: "leg",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"muscle cramp", "deep vein thrombosis", "gastrocnemius strain"},
			RedFlags:        []string{"one-sided calf swelling with warmth", "calf pain after long travel or surgery"},
			CodingRefs:      []string{"ICD-10:M79.662", "SNOMED:53840002"},
		},
	},
	{
		ID:       "leg.ankle_foot",
		Label:    Label{EN: "Ankle and foot", AR: "الكاحل والقدم"},
		Category: CategoryLowerLimb,
		Priority: 2,
		Terminal: true,
		ParentID: "leg",
		Clinical: ClinicalMetadata{
			CommonDiagnoses: []string{"ankle sprain", "plantar fasciitis", "gout"},
			CodingRefs:      []string{"ICD-10:M25.579", "SNOMED:344001"},
		},
	},
}
