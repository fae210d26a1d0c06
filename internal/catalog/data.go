package catalog

import "github.com/rsilvagit/ajudaja/internal/model"

// AllCategories is the category sentinel meaning "no category filter".
const AllCategories = "Todos"

var featured = []model.Opportunity{
	{
		ID:           "1",
		Title:        "Campanha de Arrecadação de Alimentos",
		Organization: "Banco de Alimentos",
		Category:     "Combate à Fome",
		Location:     "São Paulo, SP",
		Date:         "15/06/2023",
		Image:        "https://images.unsplash.com/photo-1593113630400-ea4288922497?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Description:  "Ajude a arrecadar alimentos não perecíveis para famílias em situação de vulnerabilidade social. Precisamos de voluntários para organizar as doações e montar as cestas básicas.",
		Requirements: "Disponibilidade aos sábados, das 9h às 13h.",
		ContactPhone: "(11) 99999-9999",
		ContactEmail: "contato@bancodealimentos.org",
		Website:      "https://www.bancodealimentos.org.br",
		IsFeatured:   true,
	},
	{
		ID:           "2",
		Title:        "Abrigo de Animais - Cuidadores Voluntários",
		Organization: "Patinhas Felizes",
		Category:     "Proteção Animal",
		Location:     "Rio de Janeiro, RJ",
		Date:         "Todos os finais de semana",
		Image:        "https://images.unsplash.com/photo-1548199973-03cce0bbc87b?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Description:  "Nosso abrigo precisa de voluntários para ajudar a cuidar dos animais resgatados. As atividades incluem alimentação, limpeza, passeios e carinho para os bichinhos.",
		Requirements: "Amor pelos animais e disponibilidade nos finais de semana.",
		ContactPhone: "(21) 98888-8888",
		ContactEmail: "voluntarios@patinhasfelizes.org",
		Website:      "https://www.patinhasfelizes.org",
		IsFeatured:   true,
	},
	{
		ID:           "3",
		Title:        "Mutirão de Limpeza de Praia",
		Organization: "Oceano Limpo",
		Category:     "Meio Ambiente",
		Location:     "Salvador, BA",
		Date:         "22/06/2023",
		Image:        "https://images.unsplash.com/photo-1618477461853-cf6ed80faba5?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Description:  "Participe do nosso mutirão de limpeza da Praia do Forte. Juntos podemos fazer a diferença para o meio ambiente e os animais marinhos.",
		Requirements: "Levar luvas e protetor solar. Recomendado uso de chapéu.",
		ContactPhone: "(71) 97777-7777",
		ContactEmail: "acao@oceanolimpo.org",
		Website:      "https://www.oceanolimpo.org",
		IsFeatured:   true,
	},
}

var others = []model.Opportunity{
	{
		ID:           "4",
		Title:        "Aulas de Reforço para Crianças",
		Organization: "Educação para Todos",
		Category:     "Educação",
		Location:     "Belo Horizonte, MG",
		Date:         "Segundas e Quartas, 14h às 16h",
		Image:        "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Description:  "Procuramos voluntários para dar aulas de reforço em matemática e português para crianças do ensino fundamental.",
		Requirements: "Conhecimento nas disciplinas e experiência com crianças.",
		ContactPhone: "(31) 96666-6666",
		ContactEmail: "voluntarios@educacaoparatodos.org",
		Website:      "https://www.educacaoparatodos.org",
	},
	{
		ID:           "5",
		Title:        "Doação de Sangue Coletiva",
		Organization: "Hemocentro Regional",
		Category:     "Saúde",
		Location:     "Curitiba, PR",
		Date:         "30/06/2023",
		Image:        "https://images.unsplash.com/photo-1615461066841-6116e61058f4?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Description:  "Campanha de doação de sangue para abastecer os estoques do Hemocentro Regional. Uma doação pode salvar até 4 vidas!",
		Requirements: "Estar em boas condições de saúde, ter entre 16 e 69 anos e pesar mais de 50kg.",
		ContactPhone: "(41) 95555-5555",
		ContactEmail: "doacao@hemocentro.org",
		Website:      "https://www.hemocentro.org",
	},
	{
		ID:           "6",
		Title:        "Construção de Casas Populares",
		Organization: "Teto Brasil",
		Category:     "Habitação",
		Location:     "Recife, PE",
		Date:         "15-17/07/2023",
		Image:        "https://images.unsplash.com/photo-1503596476-1c12a8ba09a9?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Description:  "Ajude a construir casas de emergência para famílias em situação de extrema pobreza. Um final de semana de trabalho que transforma vidas.",
		Requirements: "Disposição para trabalho físico. Não é necessário conhecimento prévio em construção.",
		ContactPhone: "(81) 94444-4444",
		ContactEmail: "voluntarios@tetobrasil.org",
		Website:      "https://www.tetobrasil.org",
	},
	{
		ID:           "7",
		Title:        "Campanha de Agasalho",
		Organization: "Solidariedade Inverno",
		Category:     "Assistência Social",
		Location:     "Porto Alegre, RS",
		Date:         "Todo o mês de junho",
		Image:        "https://images.unsplash.com/photo-1516762689617-e1cffcef479d?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Description:  "Arrecadação de agasalhos, cobertores e roupas de inverno para pessoas em situação de rua durante o inverno.",
		Requirements: "Pode ajudar doando ou como voluntário nos pontos de coleta.",
		ContactPhone: "(51) 93333-3333",
		ContactEmail: "contato@solidariedadeinverno.org",
		Website:      "https://www.solidariedadeinverno.org",
	},
	{
		ID:           "8",
		Title:        "Plantio de Árvores Nativas",
		Organization: "Refloresta Brasil",
		Category:     "Meio Ambiente",
		Location:     "Brasília, DF",
		Date:         "08/07/2023",
		Image:        "https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		Description:  "Participe do plantio de mudas de árvores nativas do Cerrado para recuperação de áreas degradadas.",
		Requirements: "Levar água, protetor solar e roupas adequadas para atividade ao ar livre.",
		ContactPhone: "(61) 92222-2222",
		ContactEmail: "acao@reflorestabrasil.org",
		Website:      "https://www.reflorestabrasil.org",
	},
}

var categories = []model.Category{
	{ID: "1", Title: AllCategories, Icon: "grid-outline"},
	{ID: "2", Title: "Combate à Fome", Icon: "fast-food-outline"},
	{ID: "3", Title: "Proteção Animal", Icon: "paw-outline"},
	{ID: "4", Title: "Meio Ambiente", Icon: "leaf-outline"},
	{ID: "5", Title: "Educação", Icon: "book-outline"},
	{ID: "6", Title: "Saúde", Icon: "medical-outline"},
	{ID: "7", Title: "Habitação", Icon: "home-outline"},
	{ID: "8", Title: "Assistência Social", Icon: "people-outline"},
}

var developers = []model.Developer{
	{
		ID:       "1",
		Name:     "Arhur Mariano",
		Role:     "Desenvolvedor FullStack",
		Image:    "https://github.com/arthvm.png",
		Bio:      "Entusiasta de tecnologia, sempre em busca de inovação e aprendizado contínuo.",
		GitHub:   "https://github.com/arthvm",
		LinkedIn: "https://linkedin.com/in/arthvm",
	},
	{
		ID:       "2",
		Name:     "Guilherme Maggiorini",
		Role:     "Desenvolvedor FrontEnd",
		Image:    "https://github.com/guimaggiorini.png",
		Bio:      "Focado em criar interfaces acessíveis e intuitivas, transformando ideias em realidade.",
		GitHub:   "https://github.com/guimaggiorini",
		LinkedIn: "https://linkedin.com/in/guimaggiorini",
	},
	{
		ID:       "3",
		Name:     "Ian Braga",
		Role:     "Desenvolvedor BackEnd",
		Image:    "https://github.com/iannrb.png",
		Bio:      "Explorador de novas tecnologias, apaixonado por facilitar a vida de outras pessoas.",
		GitHub:   "https://github.com/iannrb",
		LinkedIn: "https://linkedin.com/in/ianrossato",
	},
}

var impact = model.ImpactStats{
	Volunteers:    "1.148+",
	Organizations: "148+",
	PeopleHelped:  "51.479+",
}

// Contact details and version shown on the about screen.
const (
	ContactEmail = "contato@ajudaja.com.br"
	ContactPhone = "(11) 4002-8922"
	Version      = "1.0.0"
)
