package fixtures

// Name pools for the demo dataset. Accented entries are intentional: they
// exercise the diacritic folding path the way real rosters do.
var firstNames = []string{
	"María", "Ana", "Sofía", "Valentina", "Isidora", "Josefa",
	"Catalina", "Antonia", "Fernanda", "Camila", "Trinidad", "Agustina",
	"Martina", "Florencia", "Ignacia", "Constanza",
}

var lastNames = []string{
	"González", "Muñoz", "Rojas", "Díaz", "Pérez", "Soto",
	"Contreras", "Silva", "Martínez", "Sepúlveda", "Morales", "Núñez",
	"Araya", "Flores", "Espinoza", "Valenzuela",
}

var clubs = []string{
	"Club Gimnasia Ñuñoa", "Academia Olímpica Viña", "Club Deportivo Andino",
	"Gimnasia Artística Providencia", "Club Cóndores", "Escuela Rítmica Sur",
	"Club Universitario", "Academia Estrella",
}

var categories = []string{"Kinder", "Infantil", "Juvenil", "Adulta"}

var levels = []string{"Nivel 1", "Nivel 2", "Nivel 3", "Nivel 4", "Nivel 5"}

// Women's artistic apparatus set, as labelled in the results feed.
var apparatuses = []string{"Salto", "Asimétricas", "Viga", "Suelo"}

var championships = []string{
	"Copa Primavera 2024", "Nacional Apertura 2025", "Torneo Metropolitano 2025",
	"Copa Pacífico 2025", "Sudamericano Clubes 2024",
}
