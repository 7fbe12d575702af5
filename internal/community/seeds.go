// ABOUTME: Seed data for the in-memory feature stores
// ABOUTME: Built-in demo records, optionally overridden by a TOML seeds file

package community

import (
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/rinconada/ceibas-hub/internal/access"
	"github.com/rinconada/ceibas-hub/internal/identity"
)

// Seeds describes the demo records the feature stores start with.
// Author/reporter fields reference roster ids so the same seed file
// works against any roster carrying the built-in residents.
type Seeds struct {
	Posts    []PostSeed    `toml:"post"`
	Packages []PackageSeed `toml:"package"`
	Reports  []ReportSeed  `toml:"report"`
	Visitors []VisitorSeed `toml:"visitor"`
}

// PostSeed seeds one feed post
type PostSeed struct {
	AuthorID  string        `toml:"author_id"`
	Content   string        `toml:"content"`
	Timestamp string        `toml:"timestamp"`
	Likes     int           `toml:"likes"`
	Comments  []CommentSeed `toml:"comment"`
}

// CommentSeed seeds one comment under a post
type CommentSeed struct {
	AuthorID  string `toml:"author_id"`
	Content   string `toml:"content"`
	Timestamp string `toml:"timestamp"`
}

// PackageSeed seeds one package request
type PackageSeed struct {
	RequesterID  string `toml:"requester_id"`
	Carrier      string `toml:"carrier"`
	DeliveryTime string `toml:"delivery_time"`
	Status       string `toml:"status"`
	HelperID     string `toml:"helper_id"`
}

// ReportSeed seeds one maintenance report
type ReportSeed struct {
	ReporterID  string `toml:"reporter_id"`
	Category    string `toml:"category"`
	Description string `toml:"description"`
	ImageURL    string `toml:"image_url"`
	Status      string `toml:"status"`
	Timestamp   string `toml:"timestamp"`
}

// VisitorSeed seeds one visitor access record
type VisitorSeed struct {
	Name       string `toml:"name"`
	VisitDate  string `toml:"visit_date"`
	AccessCode string `toml:"access_code"`
	Status     string `toml:"status"`
}

// BuiltinSeeds returns the fixed demo data shipped with the hub
func BuiltinSeeds() Seeds {
	return Seeds{
		Posts: []PostSeed{
			{
				AuthorID:  "user1",
				Content:   "Recordatorio: La fumigación de áreas comunes se realizará este sábado a las 8 AM. Por favor, mantengan sus ventanas cerradas.",
				Timestamp: "Hace 2 horas",
				Likes:     15,
				Comments: []CommentSeed{
					{AuthorID: "user3", Content: "¡Gracias por el aviso!", Timestamp: "Hace 1 hora"},
				},
			},
			{
				AuthorID:  "user2",
				Content:   "Hola vecinos, encontré un juego de llaves cerca del área de juegos. Si son de alguien, contáctenme. Casa 12.",
				Timestamp: "Hace 1 día",
				Likes:     22,
			},
		},
		Packages: []PackageSeed{
			{RequesterID: "user2", Carrier: "Amazon", DeliveryTime: "Hoy, 3-5 PM", Status: PackagePending},
			{RequesterID: "user4", Carrier: "Mercado Libre", DeliveryTime: "Mañana, 10 AM", Status: PackageAccepted, HelperID: "user3"},
			{RequesterID: "user3", Carrier: "Estafeta", DeliveryTime: "Ayer", Status: PackageCompleted, HelperID: "user2"},
		},
		Reports: []ReportSeed{
			{
				ReporterID:  "user3",
				Category:    "Alumbrado Público",
				Description: "La lámpara del poste frente a la casa 28 está parpadeando desde anoche.",
				Status:      ReportReported,
				Timestamp:   "Hace 5 horas",
			},
			{
				ReporterID:  "user2",
				Category:    "Seguridad",
				Description: "La puerta de acceso peatonal no cierra automáticamente. Hay que jalarla fuerte.",
				ImageURL:    "https://picsum.photos/seed/gate/400/300",
				Status:      ReportInProgress,
				Timestamp:   "Hace 2 días",
			},
			{
				ReporterID:  "user3",
				Category:    "Jardinería",
				Description: "Se regó la manguera principal del jardín central.",
				Status:      ReportResolved,
				Timestamp:   "La semana pasada",
			},
		},
		Visitors: []VisitorSeed{
			{Name: "Juan Rodríguez (Electricista)", VisitDate: "Hoy, 2:00 PM", AccessCode: "84319", Status: VisitorPending},
			{Name: "Familia González", VisitDate: "Ayer, 6:00 PM", AccessCode: "12567", Status: VisitorDeparted},
		},
	}
}

// LoadSeeds reads a TOML seeds file, falling back to the built-in demo
// data when the path is empty or the file is unusable.
func LoadSeeds(path string, logger *slog.Logger) Seeds {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return BuiltinSeeds()
	}

	var seeds Seeds
	if _, err := toml.DecodeFile(path, &seeds); err != nil {
		logger.Warn("seeds file unusable, using built-in demo data", "path", path, "error", err)
		return BuiltinSeeds()
	}

	logger.Info("seeds loaded", "path", path,
		"posts", len(seeds.Posts),
		"packages", len(seeds.Packages),
		"reports", len(seeds.Reports),
		"visitors", len(seeds.Visitors))
	return seeds
}

// Stores bundles the four feature stores behind one constructor
type Stores struct {
	Feed     *FeedStore
	Packages *PackageStore
	Reports  *ReportStore
	Visitors *VisitorStore
}

// NewStores builds the feature stores from seed data. Seed entries
// referencing unknown roster ids are skipped with a warning. The stores
// are intentionally not persisted: they reset on every restart.
func NewStores(seeds Seeds, lookup func(id string) (*identity.User, error), qr *access.QRLinker, logger *slog.Logger) *Stores {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "community")

	resolve := func(id string) *identity.User {
		if id == "" {
			return nil
		}
		u, err := lookup(id)
		if err != nil {
			logger.Warn("seed references unknown user, skipping", "user_id", id)
			return nil
		}
		return u
	}

	feed := NewFeedStore()
	var posts []*Post
	for _, ps := range seeds.Posts {
		author := resolve(ps.AuthorID)
		if author == nil {
			continue
		}
		post := &Post{
			ID:        uuid.New().String(),
			Author:    author,
			Content:   ps.Content,
			Timestamp: ps.Timestamp,
			Likes:     ps.Likes,
			Comments:  []*Comment{},
		}
		for _, cs := range ps.Comments {
			commentAuthor := resolve(cs.AuthorID)
			if commentAuthor == nil {
				continue
			}
			post.Comments = append(post.Comments, &Comment{
				ID:        uuid.New().String(),
				Author:    commentAuthor,
				Content:   cs.Content,
				Timestamp: cs.Timestamp,
			})
		}
		posts = append(posts, post)
	}
	feed.seed(posts)

	packages := NewPackageStore()
	var requests []*PackageRequest
	for _, ps := range seeds.Packages {
		requester := resolve(ps.RequesterID)
		if requester == nil {
			continue
		}
		requests = append(requests, &PackageRequest{
			ID:           uuid.New().String(),
			Requester:    requester,
			Carrier:      ps.Carrier,
			DeliveryTime: ps.DeliveryTime,
			Status:       ps.Status,
			Helper:       resolve(ps.HelperID),
		})
	}
	packages.seed(requests)

	reports := NewReportStore()
	var filed []*MaintenanceReport
	for _, rs := range seeds.Reports {
		reporter := resolve(rs.ReporterID)
		if reporter == nil {
			continue
		}
		filed = append(filed, &MaintenanceReport{
			ID:          uuid.New().String(),
			Reporter:    reporter,
			Category:    rs.Category,
			Description: rs.Description,
			ImageURL:    rs.ImageURL,
			Status:      rs.Status,
			Timestamp:   rs.Timestamp,
		})
	}
	reports.seed(filed)

	visitors := NewVisitorStore(qr)
	var records []*Visitor
	for _, vs := range seeds.Visitors {
		records = append(records, &Visitor{
			ID:         uuid.New().String(),
			Name:       vs.Name,
			VisitDate:  vs.VisitDate,
			AccessCode: vs.AccessCode,
			QRUrl:      qr.ImageURL(access.Payload(vs.Name, vs.VisitDate, vs.AccessCode)),
			Status:     vs.Status,
		})
	}
	visitors.seed(records)

	return &Stores{
		Feed:     feed,
		Packages: packages,
		Reports:  reports,
		Visitors: visitors,
	}
}
