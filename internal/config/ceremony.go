package config

// GoldenGlobes2013Awards returns the official Golden Globes 2013 award
// categories in their normalized form. These are the default template awards:
// winner, nominee and presenter extraction keys off them so that an error in
// award discovery cannot cascade into every downstream phase.
func GoldenGlobes2013Awards() []string {
	return []string{
		"best screenplay - motion picture",
		"best director - motion picture",
		"best performance by an actress in a television series - comedy or musical",
		"best foreign language film",
		"best performance by an actor in a supporting role in a motion picture",
		"best performance by an actress in a supporting role in a series, mini-series or motion picture made for television",
		"best motion picture - comedy or musical",
		"best performance by an actress in a motion picture - comedy or musical",
		"best mini-series or motion picture made for television",
		"best original score - motion picture",
		"best performance by an actress in a television series - drama",
		"best performance by an actress in a motion picture - drama",
		"cecil b demille award",
		"best performance by an actor in a motion picture - comedy or musical",
		"best motion picture - drama",
		"best performance by an actor in a supporting role in a series, mini-series or motion picture made for television",
		"best performance by an actress in a supporting role in a motion picture",
		"best television series - drama",
		"best performance by an actor in a mini-series or motion picture made for television",
		"best performance by an actress in a mini-series or motion picture made for television",
		"best animated feature film",
		"best original song - motion picture",
		"best performance by an actor in a motion picture - drama",
		"best television series - comedy or musical",
		"best performance by an actor in a television series - drama",
		"best performance by an actor in a television series - comedy or musical",
	}
}
