// Package extras holds the light-hearted illustration and the key
// principles shown under each section. Every lookup has a generic fallback.
package extras

import (
	"net/url"
	"path"

	"github.com/ziadkadry99/layermap/internal/catalog"
)

// Illustration is the captioned image closing a detail panel. ImageURL is
// either absolute or relative to the assets root.
type Illustration struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	ImageURL string `json:"image_url" yaml:"image_url"`
	Alt      string `json:"alt" yaml:"alt"`
}

// Src resolves ImageURL against the assets base path. Absolute URLs are
// returned unchanged.
func (i Illustration) Src(base string) string {
	if u, err := url.Parse(i.ImageURL); err == nil && u.IsAbs() {
		return i.ImageURL
	}
	if base == "" {
		return i.ImageURL
	}
	if u, err := url.Parse(base); err == nil && u.IsAbs() {
		return u.JoinPath(i.ImageURL).String()
	}
	return path.Join(base, i.ImageURL)
}

// DefaultIllustration is used for ids without a dedicated entry.
var DefaultIllustration = Illustration{
	Title:    "Momento de Relajación",
	Subtitle: "Porque el aprendizaje también debe ser divertido 😄",
	ImageURL: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTblcUew64NL3iprlAX0PdgQNS13VbLrFlGUg&s",
	Alt:      "Programming meme",
}

var illustrations = map[catalog.SectionID]Illustration{
	catalog.FrontendModel: {
		Title:    "Estado del Frontend",
		Subtitle: "Mi Redux store con 300 reducers y 20 middlewares 🔥",
		ImageURL: "memes/model.png",
		Alt:      "Frontend state management this is fine meme",
	},
	catalog.FrontendView: {
		Title:    "Componentes React",
		Subtitle: "Solo mostrar datos, nada más... ¿verdad? 🎭",
		ImageURL: "memes/view.png",
		Alt:      "Meme starter pack de componentes React mostrando props, hooks y JSX",
	},
	catalog.FrontendController: {
		Title:    "Controlador Frontend",
		Subtitle: "Coordinando vuelos entre Model ✈️ y View 🛬",
		ImageURL: "memes/controller-air-traffic.png",
		Alt:      "Controlador aéreo guiando tráfico entre Vista y Modelo",
	},
	catalog.BackendController: {
		Title:    "Yo explicando mi controller",
		Subtitle: "Literalmente solo hago return res.json(data) 🥱",
		ImageURL: "memes/controller-boring.png",
		Alt:      "Meme explicación aburrida de controller",
	},
	catalog.BackendService: {
		Title:    "Capa de Servicio",
		Subtitle: "Un service nunca hace las cosas directamente… solo da las órdenes. 🕴️",
		ImageURL: "memes/backend-service-godfather.png",
		Alt:      "Backend service layer as The Godfather meme",
	},
	catalog.BackendModel: {
		Title:    "Modelo de Dominio",
		Subtitle: "Cuando tu modelo no es solo getters y setters, sino reglas de negocio 🧠",
		ImageURL: "memes/backend-model-michael-scott.png",
		Alt:      "Meme de Michael Scott 'You have no idea how high I can fly' aplicado al domain model",
	},
	catalog.BackendPersistence: {
		Title:    "Persistencia Gandalf",
		Subtitle: "Defendiendo la capa: ¡aquí solo se guarda y se lee! ⚔️",
		ImageURL: "memes/persistence-gandalf-crud.png",
		Alt:      "Meme Gandalf impidiendo meter lógica en persistencia",
	},
}

// IllustrationFor returns the illustration for id, or DefaultIllustration.
func IllustrationFor(id catalog.SectionID) Illustration {
	if ill, ok := illustrations[id]; ok {
		return ill
	}
	return DefaultIllustration
}

// DefaultPractices applies to any layer.
var DefaultPractices = []string{
	"Sigue los principios SOLID",
	"Mantén el código limpio y legible",
	"Escribe tests para validar comportamiento",
	"Documenta las decisiones arquitectónicas",
}

var practices = map[catalog.SectionID][]string{
	catalog.FrontendModel: {
		"Mantén el estado local cuando sea posible",
		"Valida datos en el cliente antes de enviarlos",
		"Usa hooks personalizados para lógica reutilizable",
		"Separa el estado de UI del estado de dominio",
	},
	catalog.FrontendView: {
		"Componentes deben ser solo presentacionales",
		"Reciben datos como props, emiten eventos",
		"No contienen lógica de negocio",
		"Enfócate en la experiencia del usuario",
	},
	catalog.FrontendController: {
		"Coordina Model y View, no los implementa",
		"Maneja eventos del usuario y los traduce a acciones",
		"Se comunica con el backend via APIs",
		"Mantén los controladores ligeros y enfocados",
	},
	catalog.BackendController: {
		"Solo recibe requests y devuelve responses",
		"Valida entrada pero delega la lógica",
		"Transforma DTOs, no contiene reglas de negocio",
		"Maneja errores HTTP apropiadamente",
	},
	catalog.BackendService: {
		"Actúa como coordinador, no como contenedor de lógica",
		"Maneja transacciones y efectos secundarios",
		"Delega la lógica de negocio al modelo",
		"Orquesta llamadas entre diferentes capas",
	},
	catalog.BackendModel: {
		"Toda la lógica de negocio debe vivir aquí",
		"Usa factory methods para creación con validación",
		"Encapsula comportamientos y reglas del dominio",
		"Mantén la inmutabilidad cuando sea posible",
	},
	catalog.BackendPersistence: {
		"Solo operaciones CRUD, sin lógica de negocio",
		"Abstrae la tecnología de base de datos",
		"Usa el patrón Repository para testabilidad",
		"Separa queries complejas en métodos específicos",
	},
}

// PracticesFor returns a copy of the key principles for id, or of
// DefaultPractices.
func PracticesFor(id catalog.SectionID) []string {
	if p, ok := practices[id]; ok {
		return append([]string(nil), p...)
	}
	return append([]string(nil), DefaultPractices...)
}
