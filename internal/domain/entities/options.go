package entities

// Canonical option lists used by intake forms. Kept in one place so the
// presentation layers and stored rows never drift apart.

var OriginOptions = []string{
	"Pessoalmente",
	"Telefone",
	"Whatsapp",
	"Ministério Publico",
	"Administração",
	"Ouvidoria",
	"Disk Denuncia",
}

var CategoryOptions = []string{
	"Urbana",
	"Ambiental",
	"Urbana e Ambiental",
}

var ZoneOptions = []string{
	"NORTE", "SUL", "LESTE", "OESTE", "CENTRO",
	"1° DISTRITO", "2° DISTRITO", "3° DISTRITO", "4° DISTRITO",
	"Zona rural",
}

var NeighborhoodOptions = []string{
	"AGAMENON MAGALHÃES", "ALTO DO MOURA", "CAIUCÁ", "CEDRO", "CENTENÁRIO",
	"CIDADE ALTA", "CIDADE JARDIM", "DEPUTADO JOSÉ ANTÔNIO LIBERATO",
	"DISTRITO INDUSTRIAL", "DIVINÓPOLIS", "INDIANÓPOLIS", "JARDIM BOA VISTA",
	"JARDIM PANORAMA", "JOÃO MOTA", "JOSÉ CARLOS DE OLIVEIRA", "KENNEDY",
	"LUIZ GONZAGA", "MANOEL BEZERRA LOPES", "MARIA AUXILIADORA",
	"MAURÍCIO DE NASSAU", "MORRO BOM JESUS", "NINA LIBERATO",
	"NOSSA SENHORA DAS DORES", "NOSSA SENHORA DAS GRAÇAS", "NOVA CARUARU",
	"PETRÓPOLIS", "PINHEIRÓPOLIS", "RENDEIRAS", "RIACHÃO", "SALGADO",
	"SANTA CLARA", "SANTA ROSA", "SÃO FRANCISCO", "SÃO JOÃO DA ESCÓCIA",
	"SÃO JOSÉ", "SERRAS DO VALE", "SEVERINO AFONSO", "UNIVERSITÁRIO",
	"VASSOURAL", "VILA PADRE INÁCIO", "VERDE", "VILA ANDORINHA", "XIQUE-XIQUE",
}

var InspectorOptions = []string{
	"EDVALDO WILSON BEZERRA DA SILVA - 000.323",
	"PATRICIA MIRELLY BEZERRA CAMPOS - 000.332",
	"RAIANY NAYARA DE LIMA - 000.362",
	"SUELLEN BEZERRA DO NASCIMENTO - 000.417",
}
