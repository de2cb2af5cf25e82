package surveyimport

import "github.com/vals999/asis-backend/internal/survey"

// questionMeta is the curated presentation of a known CSV column:
// display text, category and answer type. Columns not listed here still
// become questions, with the header cell as verbatim display text and
// category/answer type left unset until curated.
type questionMeta struct {
	Text       string
	Category   survey.QuestionCategory
	AnswerType survey.AnswerType
}

// headerMapping keys are the (truncated) column headers of the ASIS
// field-survey exports. The export tool cuts headers at 20 characters,
// hence the mangled keys.
var headerMapping = map[string]questionMeta{
	// Per-household (form) columns.
	"lat_1_Presione_actualiza":  {"Latitud de la ubicación", survey.CategoryHousing, survey.AnswerTypeNumber},
	"long_1_Presione_actualiza": {"Longitud de la ubicación", survey.CategoryHousing, survey.AnswerTypeNumber},
	"2_Direccin_escribir_":      {"Dirección", survey.CategoryHousing, survey.AnswerTypeText},
	"3_Marque_segn_la_pos":      {"Marque según la posibilidad de realizar la entrevista", survey.CategorySocial, survey.AnswerTypeMultipleChoice},
	"4_1_Cuntas_personas_":      {"¿Cuántas personas viven la mayor parte del tiempo en esta vivienda?", survey.CategoryPersonal, survey.AnswerTypeNumber},
	"37_25_Con_qu_materia":      {"¿Con qué material está construida la vivienda, en su mayoría?", survey.CategoryHousing, survey.AnswerTypeMultipleChoice},
	"38_26_Tiene_acceso_a":      {"¿Tiene acceso a agua?", survey.CategoryHousing, survey.AnswerTypeMultipleChoice},
	"40_28_El_agua_que_se":      {"¿El agua que se usa para beber y cocinar es potable?", survey.CategoryHousing, survey.AnswerTypeMultipleChoice},
	"45_33_La_conexion_de":      {"La conexión de electricidad, ¿es…?", survey.CategoryHousing, survey.AnswerTypeMultipleChoice},
	"46_34_Con_respecto_a":      {"Con respecto a internet, ¿Tiene…?", survey.CategoryHousing, survey.AnswerTypeMultipleChoice},
	"47_35_Cuntos_ambient":      {"¿Cuántos ambientes, habitaciones o piezas para dormir tiene en total?", survey.CategoryHousing, survey.AnswerTypeNumber},
	"49_37_Sumando_todos_":      {"Sumando todos los ingresos económicos de la vivienda, considera que:", survey.CategoryEconomic, survey.AnswerTypeMultipleChoice},
	"50_38_En_esta_vivien":      {"En esta vivienda, ¿reciben alguna asistencia alimentaria?", survey.CategoryEconomic, survey.AnswerTypeMultipleChoice},
	"52_40_Ante_un_proble":      {"Ante un problema de salud, ¿a dónde concurren?", survey.CategoryHealth, survey.AnswerTypeMultipleChoice},
	"56_44_Hay_personas_e":      {"¿Hay personas embarazadas?", survey.CategoryHealth, survey.AnswerTypeMultipleChoice},
	"67_48_Alguien_realiz":      {"¿Alguien realiza tratamiento en Salud Mental?", survey.CategoryHealth, survey.AnswerTypeMultipleChoice},
	"74_53_En_esta_vivien":      {"En esta vivienda, ¿participan en alguna institución u organización en tu barrio?", survey.CategorySocial, survey.AnswerTypeMultipleChoice},
	"77_55_Cul_o_cules_de":      {"¿Cuál o cuáles de los siguientes servicios llegan a tu barrio?", survey.CategoryHousing, survey.AnswerTypeMultipleChoice},
	"96_Observaciones_agr":      {"Observaciones", survey.CategorySocial, survey.AnswerTypeText},

	// Per-person (branch) columns.
	"6_2_Numero_de_person": {"Número de persona", survey.CategoryPersonal, survey.AnswerTypeNumber},
	"7_Nombre":             {"Nombre", survey.CategoryPersonal, survey.AnswerTypeText},
	"8_3_Edad":             {"Edad", survey.CategoryPersonal, survey.AnswerTypeNumber},
	"9_4_De_acuerdo_a_la_": {"¿Con cuál de las siguientes se identifica? (identidad de género)", survey.CategoryPersonal, survey.AnswerTypeMultipleChoice},
	"10_5_En_qu_pas_naci":  {"¿En qué país nació?", survey.CategoryPersonal, survey.AnswerTypeMultipleChoice},
	"12_6_Para_los_mayore": {"¿Sabe leer y escribir? (mayores de 10 años)", survey.CategoryEducation, survey.AnswerTypeMultipleChoice},
	"13_7_Para_mayores_de": {"¿Cuál es el máximo nivel educativo que alcanzó? (mayores de 4 años)", survey.CategoryEducation, survey.AnswerTypeMultipleChoice},
	"14_8_Para_mayores_de": {"¿Trabajó al menos una hora la semana pasada? (mayores de 14 años)", survey.CategoryEconomic, survey.AnswerTypeMultipleChoice},
	"18_12_Cobra_jubilaci": {"¿Cobra jubilación o pensión?", survey.CategoryEconomic, survey.AnswerTypeMultipleChoice},
	"20_14_Recibe_algn_pr": {"¿Recibe algún programa, subsidio del Estado?", survey.CategoryEconomic, survey.AnswerTypeMultipleChoice},
	"22_15_Tiene_alguna_d": {"¿Tiene alguna cobertura de salud?", survey.CategoryHealth, survey.AnswerTypeMultipleChoice},
	"23_16_Realizo_un_con": {"¿Realizó un control de salud en el último año?", survey.CategoryHealth, survey.AnswerTypeMultipleChoice},
	"24_17_Cuenta_con_el_": {"¿Cuenta con el calendario de vacunación completo?", survey.CategoryHealth, survey.AnswerTypeMultipleChoice},
	"30_22_Sufreha_sufrid": {"¿Sufre/ha sufrido situaciones de violencia?", survey.CategorySocial, survey.AnswerTypeMultipleChoice},
	"32_23_Presenta_algun": {"¿Presenta alguna discapacidad?", survey.CategoryHealth, survey.AnswerTypeMultipleChoice},
	"34_24_Tiene_certific": {"¿Tiene certificado único de discapacidad (CUD)?", survey.CategoryHealth, survey.AnswerTypeMultipleChoice},
	"36_Fecha_de_vencimie": {"Fecha de vencimiento del CUD", survey.CategoryHealth, survey.AnswerTypeDate},
}

// metaForHeader resolves a header cell to its curated metadata, falling
// back to the raw cell text for unknown columns.
func metaForHeader(cell string) questionMeta {
	if m, ok := headerMapping[cell]; ok {
		return m
	}
	return questionMeta{Text: cell}
}
