package domain

// ServiceID код услуги из фиксированного каталога барбершопа
type ServiceID string

const (
	ServicePersonalizado ServiceID = "personalizado"
	ServiceLowFade       ServiceID = "low-fade"
	ServiceMidFade       ServiceID = "mid-fade"
	ServiceSocial        ServiceID = "social"
	ServiceMilitar       ServiceID = "militar"
	ServiceBuzzcut       ServiceID = "buzzcut"
	ServiceBarba         ServiceID = "barba"
	ServiceLimpeza       ServiceID = "limpeza"
	ServiceHidratacao    ServiceID = "hidratacao"
	ServiceCombo         ServiceID = "combo"
)

// DefaultServiceID услуга, выбранная в форме бронирования по умолчанию
const DefaultServiceID = ServicePersonalizado

// Service статическая запись каталога услуг
// Каталог загружается один раз при старте и никогда не мутируется
type Service struct {
	ID              ServiceID
	Name            string
	Price           int // целые денежные единицы (BRL)
	DurationMinutes int
	Description     string
	ImageURL        string
}

// Services полный каталог услуг барбершопа
var Services = []Service{
	{
		ID:              ServicePersonalizado,
		Name:            "Corte Personalizado",
		Price:           30,
		DurationMinutes: 45,
		Description:     "Consultoria de visagismo para encontrar o corte ideal para seu rosto.",
		ImageURL:        "https://images.unsplash.com/photo-1621605815971-fbc98d665033?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:              ServiceLowFade,
		Name:            "Low Fade",
		Price:           35,
		DurationMinutes: 45,
		Description:     "Degradê baixo e sutil, iniciando próximo à orelha.",
		ImageURL:        "https://i.pinimg.com/originals/1c/5e/fc/1c5efcacfb194c250096a53133ab4d44.jpg",
	},
	{
		ID:              ServiceMidFade,
		Name:            "Mid Fade",
		Price:           35,
		DurationMinutes: 45,
		Description:     "Degradê médio, o equilíbrio perfeito entre estilo e discrição.",
		ImageURL:        "https://blog.newoldman.com.br/wp-content/uploads/2025/02/Inspiracoes-Mid-Fade-8.jpg",
	},
	{
		ID:              ServiceSocial,
		Name:            "Corte Social",
		Price:           30,
		DurationMinutes: 40,
		Description:     "Todo na tesoura, clássico, alinhado e executivo.",
		ImageURL:        "https://i.pinimg.com/564x/52/d1/65/52d1655bdee95dd59cfb56201926318a.jpg",
	},
	{
		ID:              ServiceMilitar,
		Name:            "Corte Militar",
		Price:           30,
		DurationMinutes: 30,
		Description:     "Laterais zero ou muito baixas, topo curto. Praticidade total.",
		ImageURL:        "https://i.pinimg.com/736x/7c/7d/26/7c7d269a7f26983fea049b1a2e74298f.jpg",
	},
	{
		ID:              ServiceBuzzcut,
		Name:            "Buzz cut",
		Price:           25,
		DurationMinutes: 30,
		Description:     "Corte raspado uniforme na máquina. Estilo moderno e radical.",
		ImageURL:        "https://salaovirtual.org/wp-content/uploads/2021/12/buzz-cut-masculino.jpg",
	},
	{
		ID:              ServiceBarba,
		Name:            "Barba Tradicional",
		Price:           30,
		DurationMinutes: 30,
		Description:     "Toalha quente, navalha e pós-barba refrescante.",
		ImageURL:        "https://dralexgoldbach.com.br/blog/wp-content/uploads/2022/02/crescimento-de-barba-1024x536.jpg",
	},
	{
		ID:              ServiceLimpeza,
		Name:            "Limpeza Facial",
		Price:           50,
		DurationMinutes: 30,
		Description:     "Remoção de impurezas e tratamento facial completo.",
		ImageURL:        "https://images.unsplash.com/photo-1512290923902-8a9f81dc236c?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:              ServiceHidratacao,
		Name:            "Hidratação da Barba",
		Price:           30,
		DurationMinutes: 20,
		Description:     "Tratamento com óleos para amaciar e alinhar os fios.",
		ImageURL:        "https://cdn.sistemawbuy.com.br/arquivos/2ff2a6ae590a5650a33f3f01cd925b45/blogitens/imagem-fronta-de-homem-usando-babosa-na-barba-656f83e1e446b1.png",
	},
	{
		ID:              ServiceCombo,
		Name:            "Combo (Cabelo + Barba)",
		Price:           60,
		DurationMinutes: 75,
		Description:     "Serviço completo de cabelo e barba com desconto especial.",
		ImageURL:        "https://i.pinimg.com/474x/89/bc/14/89bc140dae5a33c211d9f336788898fb.jpg",
	},
}

// ServiceByID возвращает услугу каталога по её коду
func ServiceByID(id ServiceID) (*Service, bool) {
	for i := range Services {
		if Services[i].ID == id {
			return &Services[i], true
		}
	}
	return nil, false
}

// IsValidServiceID проверяет, что код услуги есть в каталоге
func IsValidServiceID(id ServiceID) bool {
	_, ok := ServiceByID(id)
	return ok
}

// ServicePrice возвращает цену услуги; 0 для неизвестного кода
func ServicePrice(id ServiceID) int {
	if svc, ok := ServiceByID(id); ok {
		return svc.Price
	}
	return 0
}
