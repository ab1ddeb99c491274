// Package catalog seeds the immutable team/player pool the auctions draw
// from. Records are grouped by competition; the engine only ever uses their
// identifiers.
package catalog

import (
	"fmt"

	model "fantasy-auction/internal/models"
	"fantasy-auction/internal/repository"
	"fantasy-auction/utils"
)

type club struct {
	name    string
	country string
}

type golfer struct {
	name        string
	country     string
	side        string
	ranking     int
	majors      int
	appearances int
}

// Champions League clubs, 2025/2026 season.
var championsLeagueClubs = []club{
	{"Real Madrid", "Spain"},
	{"Manchester City", "England"},
	{"Bayern Munich", "Germany"},
	{"Paris Saint-Germain", "France"},
	{"Liverpool", "England"},
	{"Chelsea", "England"},
	{"Barcelona", "Spain"},
	{"Juventus", "Italy"},
	{"AC Milan", "Italy"},
	{"Inter Milan", "Italy"},
	{"Atletico Madrid", "Spain"},
	{"Borussia Dortmund", "Germany"},
	{"Arsenal", "England"},
	{"Manchester United", "England"},
	{"Tottenham", "England"},
	{"Napoli", "Italy"},
	{"AS Roma", "Italy"},
	{"Sevilla", "Spain"},
	{"Ajax", "Netherlands"},
	{"Porto", "Portugal"},
	{"Benfica", "Portugal"},
	{"RB Leipzig", "Germany"},
	{"Bayer Leverkusen", "Germany"},
	{"Atalanta", "Italy"},
	{"Sporting CP", "Portugal"},
	{"PSV Eindhoven", "Netherlands"},
	{"Club Brugge", "Belgium"},
	{"Celtic", "Scotland"},
	{"Shakhtar Donetsk", "Ukraine"},
	{"Red Star Belgrade", "Serbia"},
	{"Young Boys", "Switzerland"},
	{"Salzburg", "Austria"},
}

// Europa League clubs, 2025/2026 season.
var europaLeagueClubs = []club{
	{"Villarreal", "Spain"},
	{"West Ham United", "England"},
	{"Leicester City", "England"},
	{"Real Sociedad", "Spain"},
	{"Real Betis", "Spain"},
	{"Eintracht Frankfurt", "Germany"},
	{"Lyon", "France"},
	{"Marseille", "France"},
	{"AS Monaco", "France"},
	{"Lazio", "Italy"},
	{"Fiorentina", "Italy"},
	{"Brighton", "England"},
	{"Newcastle United", "England"},
	{"Aston Villa", "England"},
	{"Rangers", "Scotland"},
	{"Galatasaray", "Turkey"},
	{"Fenerbahce", "Turkey"},
	{"Olympiacos", "Greece"},
	{"PAOK", "Greece"},
	{"Braga", "Portugal"},
	{"Vitoria Guimaraes", "Portugal"},
	{"Union Berlin", "Germany"},
	{"Freiburg", "Germany"},
	{"Slavia Prague", "Czech Republic"},
	{"Sparta Prague", "Czech Republic"},
	{"Dynamo Kiev", "Ukraine"},
	{"Maccabi Tel Aviv", "Israel"},
	{"Qarabag", "Azerbaijan"},
	{"Sheriff Tiraspol", "Moldova"},
	{"Ludogorets", "Bulgaria"},
	{"Molde", "Norway"},
	{"HJK Helsinki", "Finland"},
}

// Ryder Cup players, both sides.
var ryderCupGolfers = []golfer{
	{"Rory McIlroy", "Northern Ireland", "Europe", 2, 4, 6},
	{"Jon Rahm", "Spain", "Europe", 4, 2, 3},
	{"Viktor Hovland", "Norway", "Europe", 5, 0, 1},
	{"Tyrrell Hatton", "England", "Europe", 12, 0, 2},
	{"Matt Fitzpatrick", "England", "Europe", 8, 1, 2},
	{"Tommy Fleetwood", "England", "Europe", 15, 0, 2},
	{"Shane Lowry", "Ireland", "Europe", 18, 1, 1},
	{"Sepp Straka", "Austria", "Europe", 20, 0, 1},
	{"Robert MacIntyre", "Scotland", "Europe", 25, 0, 1},
	{"Ludvig Aberg", "Sweden", "Europe", 3, 0, 1},
	{"Nicolai Hojgaard", "Denmark", "Europe", 30, 0, 1},
	{"Thorbjorn Olesen", "Denmark", "Europe", 35, 0, 2},
	{"Scottie Scheffler", "USA", "USA", 1, 2, 2},
	{"Xander Schauffele", "USA", "USA", 6, 2, 2},
	{"Collin Morikawa", "USA", "USA", 7, 2, 1},
	{"Wyndham Clark", "USA", "USA", 9, 1, 1},
	{"Patrick Cantlay", "USA", "USA", 10, 0, 2},
	{"Brian Harman", "USA", "USA", 11, 1, 1},
	{"Max Homa", "USA", "USA", 13, 0, 1},
	{"Jordan Spieth", "USA", "USA", 16, 3, 4},
	{"Justin Thomas", "USA", "USA", 17, 2, 2},
	{"Tony Finau", "USA", "USA", 19, 0, 2},
	{"Rickie Fowler", "USA", "USA", 22, 0, 3},
	{"Sam Burns", "USA", "USA", 24, 0, 1},
}

// Seed loads every competition's pool into the repository. Call once at
// startup against a fresh store.
func Seed(db repository.AuctionDB) error {
	seeded := 0

	addClubs := func(clubs []club, competition model.CompetitionType) error {
		for _, cl := range clubs {
			team := model.Team{
				TeamID:      utils.GenerateID(),
				Name:        cl.name,
				Country:     cl.country,
				Competition: competition,
				Meta:        model.ClubMeta{},
			}
			if err := db.AddTeam(team); err != nil {
				return fmt.Errorf("catalog: seed %s: %w", cl.name, err)
			}
			seeded++
		}
		return nil
	}

	if err := addClubs(championsLeagueClubs, model.ChampionsLeague); err != nil {
		return err
	}
	if err := addClubs(europaLeagueClubs, model.EuropaLeague); err != nil {
		return err
	}

	for _, g := range ryderCupGolfers {
		team := model.Team{
			TeamID:      utils.GenerateID(),
			Name:        g.name,
			Country:     g.country,
			Competition: model.RyderCup,
			Meta: model.GolferMeta{
				Side:                g.side,
				WorldRanking:        g.ranking,
				MajorWins:           g.majors,
				RyderCupAppearances: g.appearances,
			},
		}
		if err := db.AddTeam(team); err != nil {
			return fmt.Errorf("catalog: seed %s: %w", g.name, err)
		}
		seeded++
	}

	utils.Info("catalog seeded", map[string]any{"teams": seeded})
	return nil
}
