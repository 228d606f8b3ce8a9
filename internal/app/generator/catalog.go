package generator

// Curated source lists for randomized content. Slices (not maps) so that a
// seeded run always draws in the same sequence.

type provinceSpec struct {
	Name   string
	Cities []string
}

var provinces = []provinceSpec{
	{"Punjab", []string{"Lahore", "Faisalabad", "Rawalpindi", "Multan", "Gujranwala", "Sialkot", "Bahawalpur", "Sargodha"}},
	{"Sindh", []string{"Karachi", "Hyderabad", "Sukkur", "Larkana", "Nawabshah", "Mirpur Khas", "Jacobabad"}},
	{"Khyber Pakhtunkhwa", []string{"Peshawar", "Mardan", "Abbottabad", "Swat", "Nowshera", "Charsadda", "Mansehra"}},
	{"Balochistan", []string{"Quetta", "Turbat", "Khuzdar", "Chaman", "Zhob", "Gwadar"}},
	{"Gilgit-Baltistan", []string{"Gilgit", "Skardu", "Chilas", "Astore"}},
	{"Azad Kashmir", []string{"Muzaffarabad", "Mirpur", "Kotli", "Rawalakot"}},
}

var firstNames = []string{
	"Ahmed", "Ali", "Hassan", "Hussein", "Muhammad", "Usman", "Umar", "Bilal", "Hamza", "Zain",
	"Fatima", "Aisha", "Maryam", "Zara", "Hania", "Sana", "Ayesha", "Noor", "Mariam", "Zoya",
	"Abdullah", "Ibrahim", "Yusuf", "Haris", "Rayyan", "Arham", "Zayan", "Ayan", "Amaan", "Shahzad",
	"Amina", "Khadija", "Sumaya", "Hafsa", "Jannat", "Mahnoor", "Alina", "Sadia", "Nida", "Rabia",
}

var lastNames = []string{
	"Khan", "Ali", "Hussain", "Ahmed", "Malik", "Raza", "Hassan", "Abbas", "Rizvi", "Zaidi",
	"Shah", "Qureshi", "Hashmi", "Jafri", "Naqvi", "Rizwan", "Siddiqui", "Farooq", "Khalid", "Saleem",
	"Rehman", "Iqbal", "Akhtar", "Nadeem", "Rashid", "Tariq", "Waseem", "Naeem", "Saeed", "Zahid",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

var blockLetters = []string{"A", "B", "C", "D", "E"}

var streetNames = []string{
	"Main Boulevard", "Park Road", "Mall Road", "College Road", "University Road",
	"Industrial Area", "Defence Housing", "Gulberg", "Model Town", "Johar Town",
	"Bahria Town", "DHA", "Clifton", "Saddar", "Cantt",
}

var storeStreets = []string{"Main Road", "Commercial Area", "Market Street", "Shopping District"}

var storeNamePrefixes = []string{"Mega", "Super", "Prime", "Elite", "Premium", "Express"}
var storeNameSuffixes = []string{"Store", "Mart", "Center", "Plaza", "Mall"}

var storeTypes = []string{"Retail", "Supermarket", "Department Store", "Specialty Store", "Outlet", "Mall"}

var paymentMethods = []string{"Cash", "Credit Card", "Debit Card", "Mobile Banking", "Bank Transfer", "EasyPaisa", "JazzCash"}

var shippingMethods = []string{"Standard", "Express", "Same Day", "Pickup", "Courier"}

var educationLevels = []string{"Primary", "Secondary", "Higher Secondary", "Bachelor", "Master", "PhD", "Other"}

var maritalStatuses = []string{"Single", "Married", "Divorced", "Widowed"}

var genders = []string{"M", "F", "Other"}

var jobTitles = []string{"Sales Associate", "Cashier", "Manager", "Supervisor", "Customer Service", "Stock Clerk"}

var departments = []string{"Sales", "Customer Service", "Operations", "Management", "Inventory"}

type categorySpec struct {
	ID     uint
	Name   string
	Brands []string
	// Names holds category-specific product name stems; empty means the
	// generic "<brand> Product <id>" template is used.
	Names []string
	// Light categories get a much lower sampled weight range.
	Light bool
	// Numbered appends a model generation number to the product name.
	Numbered bool
}

var categorySpecs = []categorySpec{
	{1, "Electronics", []string{"Samsung", "Huawei", "Oppo", "Vivo", "Infinix", "Tecno", "QMobile"},
		[]string{"Smartphone", "Laptop", "Tablet", "TV", "Headphones", "Camera", "Speaker", "Charger"}, false, true},
	{2, "Textiles", []string{"Gul Ahmed", "Khaadi", "Alkaram", "Chen One", "Bonanza", "Sapphire"},
		[]string{"Shirt", "Pants", "Dress", "Suit", "Kurta", "Shalwar", "Dupatta", "Scarf"}, false, false},
	{3, "Food & Beverages", []string{"Nestle", "Unilever", "Engro", "Shan Foods", "National Foods", "Mitchells"},
		[]string{"Rice", "Oil", "Tea", "Biscuits", "Chocolate", "Juice", "Milk", "Bread"}, true, false},
	{4, "Automotive", []string{"Suzuki", "Toyota", "Honda", "Daihatsu", "Nissan", "Mitsubishi"}, nil, false, false},
	{5, "Home & Garden", []string{"IKEA", "Habitt", "Interwood", "Chenab", "Furniture Mall"}, nil, false, false},
	{6, "Beauty & Personal Care", []string{"L'Oreal", "Garnier", "Fair & Lovely", "Clean & Clear", "Ponds"}, nil, false, false},
	{7, "Sports & Fitness", []string{"Nike", "Adidas", "Puma", "Reebok", "Under Armour"}, nil, true, false},
	{8, "Books & Stationery", []string{"Oxford", "Pelikan", "Dollar", "Pilot", "Staedtler"}, nil, true, false},
}
