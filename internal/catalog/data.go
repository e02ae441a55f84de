package catalog

type entry struct {
	id          int
	name        string
	price       string
	description string
	image       string
	category    string
}

const (
	CategoryWear   = "WEAR"
	CategoryWalk   = "WALK"
	CategoryLiving = "LIVING"
	CategoryTravel = "TRAVEL"
)

var categoryOrder = []string{CategoryWear, CategoryWalk, CategoryLiving, CategoryTravel}

var entries = []entry{
	{1, "Luxury Pet Collar", "Rs.4000.00", "Premium leather collar with gold-plated hardware. Adjustable and comfortable for daily wear.", "w1", CategoryWear},
	{2, "Designer Sweater", "Rs.3000.00", "Soft merino wool sweater to keep your pet warm in style.", "w2", CategoryWear},
	{3, "Bow Tie Set", "Rs.2000.00", "Elegant bow tie collection for special occasions.", "w3", CategoryWear},
	{4, "Rain Jacket", "Rs.5000.00", "Waterproof jacket with reflective strips for safety.", "w4", CategoryWear},
	{5, "Party Dress", "Rs.4500.00", "Adorable dress perfect for celebrations and photo shoots.", "w5", CategoryWear},
	{6, "Winter Coat", "Rs.6000.00", "Thick, insulated coat for cold weather protection.", "w6", CategoryWear},
	{7, "Summer T-Shirt", "Rs.2500.00", "Breathable cotton t-shirt with fun prints for warm weather.", "w7", CategoryWear},
	{8, "Bandana Collection", "Rs.1500.00", "Set of 3 stylish bandanas in different patterns.", "w8", CategoryWear},

	{9, "Premium Leash", "£35.00", "Durable nylon leash with padded handle for comfort.", "walk1", CategoryWalk},
	{10, "Comfort Harness", "£48.00", "No-pull harness with breathable mesh design.", "walk2", CategoryWalk},
	{11, "Retractable Leash", "£42.00", "16-foot retractable leash with one-button control.", "walk3", CategoryWalk},
	{12, "Reflective Collar", "£28.00", "Safety collar with LED lights for night walks.", "walk4", CategoryWalk},
	{13, "Poop Bag Dispenser", "£12.00", "Stylish dispenser with biodegradable bags included.", "walk5", CategoryWalk},
	{14, "Walking Belt", "£32.00", "Hands-free leash system for active pet owners.", "walk6", CategoryWalk},
	{15, "Training Clicker", "£8.00", "Professional clicker for positive reinforcement training during walks.", "walk7", CategoryWalk},
	{16, "Treat Pouch", "£18.00", "Convenient pouch to carry treats and accessories on walks.", "walk8", CategoryWalk},

	{17, "Luxury Pet Bed", "£85.00", "Orthopedic memory foam bed with removable washable cover.", "li1", CategoryLiving},
	{18, "Feeding Bowl Set", "£35.00", "Ceramic elevated bowls for better digestion.", "li2", CategoryLiving},
	{19, "Interactive Toy", "£25.00", "Smart toy that keeps your pet entertained for hours.", "li3", CategoryLiving},
	{20, "Pet Blanket", "£42.00", "Ultra-soft fleece blanket for cozy naps.", "li4", CategoryLiving},
	{21, "Scratching Post", "£58.00", "Multi-level cat tree with sisal rope posts.", "li5", CategoryLiving},
	{22, "Water Fountain", "£65.00", "Automatic pet fountain with triple filtration system.", "li6", CategoryLiving},
	{23, "Grooming Kit", "£45.00", "Complete grooming set with brush, nail clipper, and comb.", "li7", CategoryLiving},
	{24, "Calming Diffuser", "£38.00", "Pheromone diffuser to reduce pet anxiety and stress.", "li8", CategoryLiving},

	{25, "Travel Carrier", "£95.00", "Airline-approved carrier with ventilation and comfort.", "t1", CategoryTravel},
	{26, "Car Seat Cover", "£45.00", "Waterproof seat protector with hammock design.", "t2", CategoryTravel},
	{27, "Portable Bowl", "£18.00", "Collapsible food and water bowl for travel.", "t3", CategoryTravel},
	{28, "Pet Backpack", "£78.00", "Comfortable backpack carrier for small pets.", "t4", CategoryTravel},
	{29, "Travel Bed", "£52.00", "Foldable bed that fits in any suitcase.", "t5", CategoryTravel},
	{30, "ID Tag Set", "£15.00", "Customizable tags with QR code for easy identification.", "t6", CategoryTravel},
	{31, "Pet Seatbelt", "£22.00", "Safety harness seatbelt for secure car travel.", "t7", CategoryTravel},
	{32, "Travel First Aid Kit", "£35.00", "Complete emergency kit for pets on the go.", "t8", CategoryTravel},
}
