package excusegen

// Pre-authored fallback sets, one per content tag. Cardinality always
// matches VariantCount so the floor holds regardless of why generation
// failed.
var fallbackSets = map[string][]string{
	"quick": {
		"Scusami, mi si è bloccato il telefono e ho visto il messaggio solo ora.",
		"Perdonami, sono rimasto incastrato in una chiamata che non finiva più.",
		"Scusa il ritardo, ho avuto un imprevisto con i mezzi.",
	},
	"work": {
		"Mi è entrata una riunione urgente all'ultimo minuto, non potevo proprio uscirne.",
		"Il capo mi ha trattenuto per una consegna improvvisa, ho appena finito.",
		"È saltato un sistema in ufficio e hanno chiamato tutti, me compreso.",
	},
	"elaborate": {
		"Non ci crederai: il vicino ha chiuso il garage con la mia macchina dentro ed è partito per il weekend.",
		"Stavo uscendo quando il corriere è arrivato con un pacco da firmare per la vicina anziana, non potevo lasciarlo lì.",
		"Si è allagata la cantina e ho passato l'ultima ora a spostare scatoloni con mezzo condominio.",
	},
	"generic": {
		"Scusami tanto, mi è successo un imprevisto e non sono riuscito ad avvisarti prima.",
		"Perdonami, la giornata è precipitata e ho perso completamente la cognizione del tempo.",
		"Mi dispiace, è saltato fuori un problema familiare che dovevo gestire subito.",
	},
}

func fallbackResult(styleTag, reason string) Result {
	set, ok := fallbackSets[styleTag]
	if !ok {
		set = fallbackSets["generic"]
	}
	variants := make([]string, VariantCount)
	copy(variants, set)
	return Result{Variants: variants, Degraded: true, Reason: reason}
}
