package database

import (
	"context"
	"database/sql"

	"github.com/munhozvinicius/divinomaravilhoso/internal/slug"
)

// ddl holds the CREATE TABLE statements executed at startup. The schema is
// append-only for votes, comments and orders; products and tracks are seeded
// once and treated as read-mostly catalogs afterwards.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title TEXT NOT NULL,
		date_iso DATE NOT NULL,
		city TEXT NOT NULL,
		venue TEXT NOT NULL,
		status VARCHAR(64) DEFAULT 'confirmado',
		description TEXT,
		tickets_link TEXT,
		instagram_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(191) NOT NULL,
		slug VARCHAR(191) UNIQUE,
		description TEXT,
		price_cents INT NOT NULL,
		category VARCHAR(64),
		is_new BOOLEAN DEFAULT FALSE,
		inventory INT DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT,
		customer_address TEXT,
		payment_method TEXT,
		total_cents INT NOT NULL,
		items_json JSON NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
		id INT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(191) UNIQUE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS social_links (
		id INT AUTO_INCREMENT PRIMARY KEY,
		label TEXT NOT NULL,
		url TEXT NOT NULL,
		platform VARCHAR(64)
	)`,
	`CREATE TABLE IF NOT EXISTS setlist_tracks (
		id INT AUTO_INCREMENT PRIMARY KEY,
		track_name VARCHAR(191) UNIQUE NOT NULL,
		slug VARCHAR(191) UNIQUE NOT NULL,
		position INT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS setlist_votes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		track_name VARCHAR(191) NOT NULL,
		voter_name TEXT,
		voter_contact TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS setlist_comments (
		id INT AUTO_INCREMENT PRIMARY KEY,
		contributor_name TEXT,
		idea TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// setlistTracks is the canonical repertoire, in display order. The seed
// derives each slug from the name, so a fan typing "bogota" still lands on
// "BOGOTÁ".
var setlistTracks = []string{
	"A LUZ DE TIETA",
	"ALMA SEBOSA / FLUTUA",
	"BOGOTÁ",
	"BOM SENSO",
	"CACHIMBO DA PAZ",
	"CAETANO VELOSO",
	"CIRANDA DE MALUCO",
	"CONTEXTO",
	"CRUA",
	"CUBA",
	"DEIXA EU DIZER / DESABAFO",
	"DESCOBRIDOR DOS 7 MARES",
	"DIG DIG DIG / DUAS CIDADES",
	"ELA PARTIU",
	"ENGENHO DE DENTRO",
	"FORA DA LEI",
	"FUNK ATÉ O CAROÇO",
	"GUINÉ BISSAU",
	"KILARIO",
	"LILÁS",
	"LUCRO",
	"MANGUETOWN",
	"MANUEL",
	"MAR DE GENTE",
	"ME DEIXA",
	"NÃO EXISTE AMOR EM SP",
	"NEM VEM QUE NÃO TEM",
	"O QUE SOBROU DO CÉU",
	"ODARA",
	"PARA LENNON E MCCARTNEY",
	"PIRANHA",
	"PRAIEIRA / SOSSEGO",
	"QUAL É",
	"QUANDO A MARÉ ENCHER",
	"RETRATO PRA IAIÁ",
	"SAMBA MAKOSSA",
	"SUBIRUSDOISTIOZIN",
	"SULAMERICANO",
	"VAI VENDO",
	"VOCÊ",
	"A FLOR",
	"AQUELE ABRAÇO",
	"ENVOLVIDÃO",
	"FALADOR PASSA MAL",
	"JORGE DA CAPADÓCIA",
	"JORGE MARAVILHA",
	"KRIOLA",
	"NA FRENTE DO RETO",
	"O TELEFONE TOCOU NOVAMENTE",
	"OBA, LÁ VEM ELA",
	"SALVE SIMPATIA",
	"SEGURA A NEGA",
	"VARIAS QUEIXAS",
}

type seedEvent struct {
	title, dateISO, city, venue, status, description string
	ticketsLink, instagramURL                        *string
}

func strPtr(s string) *string { return &s }

var seedEvents = []seedEvent{
	{
		title: "BelzeBeer", dateISO: "2024-10-12", city: "São Paulo · SP", venue: "BelzeBeer",
		status:      "confirmado",
		description: "Estreia da turnê com repertório dançante e jam session após o show.",
		instagramURL: strPtr("https://www.instagram.com/belzebeer/"),
	},
	{
		title: "La Cancha", dateISO: "2024-10-24", city: "São Paulo · SP", venue: "La Cancha",
		status:      "confirmado",
		description: "Noite latina com grooves tropicais, convidado especial e pista até tarde.",
		instagramURL: strPtr("https://www.instagram.com/lacanchafc/"),
	},
	{
		title: "São Jorge Bar de Reza", dateISO: "2024-10-26", city: "Santo André · SP", venue: "São Jorge Bar de Reza",
		status:      "confirmado",
		description: "Celebração de sábado com visual psicodélico e coro coletivo nos clássicos.",
		instagramURL: strPtr("https://www.instagram.com/saojorgebardereza/"),
	},
	{
		title: "Evento Privado", dateISO: "2024-11-21", city: "Local reservado", venue: "Evento Corporativo",
		status:      "evento privado",
		description: "Apresentação exclusiva para convidados com repertório personalizado.",
	},
}

type seedProduct struct {
	name, slug, description string
	priceCents              int
	category                string
	isNew                   bool
	inventory               int
}

var seedProducts = []seedProduct{
	{
		name: "Boné Divino Maravilhoso", slug: "bone-divino",
		description: "Boné aba curva, ajuste traseiro e arte bordada inspirada nos painéis tropicalistas.",
		priceCents:  12990, category: "Bonés", isNew: true, inventory: 120,
	},
	{
		name: "Camiseta Manifesto", slug: "camiseta-manifesto",
		description: "Malha premium 100% algodão com estampa frente e verso do manifesto tropical urbano.",
		priceCents:  15990, category: "Camisetas", isNew: true, inventory: 200,
	},
	{
		name: "Adesivos Psicodélicos", slug: "adesivos-psicodelicos",
		description: "Kit com 8 adesivos vinílicos resistentes à água com arte exclusiva da turnê.",
		priceCents:  3990, category: "Adesivos", isNew: false, inventory: 500,
	},
	{
		name: "Bandeira Palco Livre", slug: "bandeira-palco-livre",
		description: "Bandeira tecido oxford 1,5m × 1m para levantar em festivais e manifestações.",
		priceCents:  8990, category: "Bandeiras", isNew: false, inventory: 80,
	},
}

var seedSocialLinks = [][3]any{
	{"Instagram", "https://www.instagram.com/divinomaravilhosobr", "instagram"},
	{"YouTube", "https://www.youtube.com/@divinomaravilhoso", "youtube"},
	{"Spotify", "https://open.spotify.com/playlist/4NCPXGyXVz6UM3QVXjFQn3?si=yr7rOCeTQvujWdmVFJQ38A", "spotify"},
	{"Contato por e-mail", "mailto:munhoz.vinicius@gmail.com", "email"},
}

// Bootstrap creates the schema and seeds the catalogs. Events and setlist
// tracks are reloaded on every start (the site always shows the current
// tour); products and social links are only inserted when their tables are
// empty so manual edits survive restarts.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return seed(ctx, db)
}

func seed(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return err
	}
	const insEvent = `INSERT INTO events (title, date_iso, city, venue, status, description, tickets_link, instagram_url)
	                  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for _, ev := range seedEvents {
		if _, err := db.ExecContext(ctx, insEvent,
			ev.title, ev.dateISO, ev.city, ev.venue, ev.status, ev.description, ev.ticketsLink, ev.instagramURL,
		); err != nil {
			return err
		}
	}

	var total int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return err
	}
	if total == 0 {
		const insProduct = `INSERT INTO products (name, slug, description, price_cents, category, is_new, inventory)
		                    VALUES (?, ?, ?, ?, ?, ?, ?)`
		for _, p := range seedProducts {
			if _, err := db.ExecContext(ctx, insProduct,
				p.name, p.slug, p.description, p.priceCents, p.category, p.isNew, p.inventory,
			); err != nil {
				return err
			}
		}
	}

	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM social_links`).Scan(&total); err != nil {
		return err
	}
	if total == 0 {
		for _, l := range seedSocialLinks {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO social_links (label, url, platform) VALUES (?, ?, ?)`,
				l[0], l[1], l[2],
			); err != nil {
				return err
			}
		}
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM setlist_tracks`); err != nil {
		return err
	}
	const insTrack = `INSERT INTO setlist_tracks (track_name, slug, position) VALUES (?, ?, ?)`
	for i, name := range setlistTracks {
		if _, err := db.ExecContext(ctx, insTrack, name, slug.Make(name), i+1); err != nil {
			return err
		}
	}
	return nil
}
