package i18n

var en = map[string]string{
	"nav.home":         "Home",
	"nav.about":        "About Us",
	"nav.services":     "Services",
	"nav.book":         "Book Appointment",
	"nav.blog":         "Horoscope",
	"nav.testimonials": "Testimonials",
	"nav.contact":      "Contact",

	"site.name":    "Kavach Jyotish Kendra",
	"site.tagline": "Spiritual Guidance & Astrological Wisdom",

	"hero.title":       "Welcome to Kavach Jyotish Kendra",
	"hero.subtitle":    "Discover Your Destiny Through Ancient Wisdom & Modern Insights",
	"hero.description": "Experience personalized astrological guidance, Kundli analysis, Vastu consultation, and spiritual healing from our certified Jyotish experts.",
	"hero.cta1":        "Book a Consultation",
	"hero.cta2":        "Know Your Horoscope",

	"about.title":    "About Kavach Jyotish Kendra",
	"about.subtitle": "Bridging ancient wisdom with modern understanding for over two decades",

	"services.title":    "Our Sacred Services",
	"services.subtitle": "Comprehensive spiritual and astrological guidance tailored to your unique journey",

	"services.kundli.title":            "Kundli Analysis",
	"services.kundli.description":      "Complete birth chart analysis with detailed predictions and remedies for life's challenges.",
	"services.kundli.price":            "₹1,500",
	"services.gemstone.title":          "Gemstone Consultation",
	"services.gemstone.description":    "Personalized gemstone recommendations based on your planetary positions and needs.",
	"services.gemstone.price":          "₹1,200",
	"services.vastu.title":             "Vastu Shastra",
	"services.vastu.description":       "Harmonize your living and working spaces with ancient architectural wisdom.",
	"services.vastu.price":             "₹2,000",
	"services.kavach.title":            "Kavach & Protection",
	"services.kavach.description":      "Sacred protective amulets and mantras for spiritual protection and prosperity.",
	"services.kavach.price":            "₹800",
	"services.horoscope.title":         "Daily Horoscope",
	"services.horoscope.description":   "Personalized daily, weekly, and monthly horoscope readings and guidance.",
	"services.horoscope.price":         "₹500",
	"services.matchmaking.title":       "Marriage Matching",
	"services.matchmaking.description": "Comprehensive compatibility analysis for harmonious relationships and marriages.",
	"services.matchmaking.price":       "₹1,800",

	"booking.title":    "Book Your Consultation",
	"booking.subtitle": "Take the first step towards spiritual clarity and guidance",
	"booking.success":  "Thank you! Your booking request has been received.",

	"form.nameLabel":          "Full Name *",
	"form.namePlaceholder":    "Enter your full name",
	"form.whatsappLabel":      "WhatsApp Number *",
	"form.whatsappPlaceholder": "+91 XXXXX XXXXX",
	"form.emailLabel":         "Email Address",
	"form.emailPlaceholder":   "your.email@example.com",
	"form.dobLabel":           "Date of Birth *",
	"form.timeLabel":          "Time of Birth",
	"form.placeLabel":         "Place of Birth",
	"form.placePlaceholder":   "City, State, Country",
	"form.serviceLabel":       "Service Type *",
	"form.selectService":      "Select a service",
	"form.messageLabel":       "Additional Message",
	"form.messagePlaceholder": "Any specific questions or concerns...",
	"form.submit":             "Submit Booking Request",
	"form.note":               "We'll contact you within 24 hours to confirm your appointment.",

	"blog.title":    "Daily Horoscope & Articles",
	"blog.subtitle": "Stay connected with cosmic energies and spiritual wisdom",
	"blog.viewAll":  "View All Articles",

	"testimonials.title":    "What Our Clients Say",
	"testimonials.subtitle": "Real experiences from people whose lives have been transformed through our guidance",
	"testimonials.submit":   "Share Your Experience",
	"testimonials.success":  "Thank you! Your testimonial will appear once it is approved.",

	"contact.title":            "Get in Touch",
	"contact.subtitle":         "Ready to begin your spiritual journey? We're here to guide you every step of the way.",
	"contact.info.title":       "Contact Information",
	"contact.address.label":    "Address",
	"contact.address.value":    "123 Spiritual Lane, Ganesh Nagar\nPune, Maharashtra 411014\nIndia",
	"contact.phone.label":      "Phone",
	"contact.phone.value":      "+91 98765 43210",
	"contact.email.label":      "Email",
	"contact.email.value":      "info@kavachjyotish.com",
	"contact.whatsapp.label":   "WhatsApp",
	"contact.whatsapp.value":   "+91 98765 43210",
	"contact.hours.label":      "Consultation Hours",
	"contact.hours.weekdays":   "Monday - Friday: 9:00 AM - 7:00 PM",
	"contact.hours.saturday":   "Saturday: 9:00 AM - 5:00 PM",
	"contact.hours.sunday":     "Sunday: 10:00 AM - 4:00 PM",
	"contact.form.title":       "Send us a Message",
	"contact.form.nameLabel":   "Your Name *",
	"contact.form.emailLabel":  "Email Address *",
	"contact.form.subjectLabel": "Subject",
	"contact.form.messageLabel": "Message *",
	"contact.form.submit":      "Send Message",
	"contact.success":          "Thank you! We'll get back to you soon.",

	"footer.tagline":   "Your Spiritual Journey Begins Here",
	"footer.admin":     "Admin Panel",
	"footer.copyright": "© 2024 Kavach Jyotish Kendra. All rights reserved.",

	"admin.login.title":            "Admin Login",
	"admin.login.subtitle":         "Access the dashboard",
	"admin.dashboard.title":        "Admin Dashboard",
	"admin.dashboard.appointments": "Appointments",
	"admin.dashboard.contacts":     "Contact Messages",
	"admin.dashboard.blog":         "Blog Posts",
	"admin.dashboard.testimonials": "Testimonials",
}
