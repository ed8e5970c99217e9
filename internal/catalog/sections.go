package catalog

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/ziadkadry99/layermap/internal/palette"
)

//go:embed examples
var examplesFS embed.FS

// example reads a bundled code sample. The files are compiled into the
// binary, so a failure here is a build defect.
func example(name string) string {
	data, err := examplesFS.ReadFile("examples/" + name)
	if err != nil {
		panic(fmt.Sprintf("catalog: missing bundled example %s: %v", name, err))
	}
	return strings.TrimRight(string(data), "\n")
}

// builtin returns the fixed LayerMap dataset, frontend first.
func builtin() []Section {
	return []Section{
		{
			ID:             FrontendModel,
			Title:          "Frontend Model",
			Category:       Frontend,
			Color:          palette.Yellow,
			Description:    "Gestiona el estado y los datos del lado del cliente. Se encarga de mantener la información, realizar validaciones básicas y comunicarse con el backend.",
			Responsibility: "Gestionar estado, validaciones del cliente, comunicación con APIs",
			CodeExample:    example("frontend-model.js"),
			Language:       "javascript",
		},
		{
			ID:             FrontendView,
			Title:          "Frontend View",
			Category:       Frontend,
			Color:          palette.Cyan,
			Description:    "Componentes de presentación que solo se encargan de mostrar la interfaz. Reciben datos como props y emiten eventos, pero no contienen lógica de negocio.",
			Responsibility: "Presentar datos, capturar eventos del usuario, UI/UX",
			CodeExample:    example("frontend-view.js"),
			Language:       "javascript",
		},
		{
			ID:             FrontendController,
			Title:          "Frontend Controller",
			Category:       Frontend,
			Color:          palette.Pink,
			Description:    "Coordina la interacción entre el Model y la View. Maneja eventos del usuario, actualiza el modelo y coordina la comunicación con el backend.",
			Responsibility: "Manejar eventos, coordinar Model y View, comunicarse con backend",
			CodeExample:    example("frontend-controller.js"),
			Language:       "javascript",
		},
		{
			ID:             BackendController,
			Title:          "Backend Controller",
			Category:       Backend,
			Color:          palette.Blue,
			Description:    "Punto de entrada para las peticiones HTTP. Recibe requests, valida datos básicos, transforma DTOs y delega la lógica de negocio a los servicios.",
			Responsibility: "Recibir HTTP requests, validar entrada, transformar DTOs, manejar responses",
			CodeExample:    example("backend-controller.java"),
			Language:       "java",
		},
		{
			ID:             BackendService,
			Title:          "Backend Service",
			Category:       Backend,
			Color:          palette.Green,
			Description:    "Coordinador de la lógica de aplicación. Orquesta operaciones complejas, maneja transacciones y delega la lógica de negocio al modelo de dominio.",
			Responsibility: "Coordinar operaciones, manejar transacciones, orquestar llamadas entre capas",
			CodeExample:    example("backend-service.java"),
			Language:       "java",
		},
		{
			ID:             BackendModel,
			Title:          "Backend Model",
			Category:       Backend,
			Color:          palette.Orange,
			Description:    "Modelo de dominio que contiene toda la lógica de negocio. Implementa validaciones, reglas del negocio, cálculos y comportamientos del dominio.",
			Responsibility: "Lógica de negocio, validaciones, reglas del dominio, comportamientos de entidad",
			CodeExample:    example("backend-model.java"),
			Language:       "java",
		},
		{
			ID:             BackendPersistence,
			Title:          "Backend Persistence",
			Category:       Backend,
			Color:          palette.Red,
			Description:    "Capa de acceso a datos que maneja únicamente operaciones CRUD. No contiene lógica de negocio, solo abstrae el acceso a la base de datos.",
			Responsibility: "Operaciones CRUD, queries a la base de datos, abstracción de persistencia",
			CodeExample:    example("backend-persistence.java"),
			Language:       "java",
		},
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It is built once and shared; the
// catalog is read-only so sharing is safe.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtin())
		if err != nil {
			panic(fmt.Sprintf("catalog: built-in dataset is inconsistent: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
