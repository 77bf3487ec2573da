package i18n

// translations is the bilingual string table. Keys are dotted paths;
// nested tables group related strings the way the UI consumes them.
var translations = map[Locale]map[string]any{
	LocaleEn: {
		"languageToggle": map[string]any{
			"ariaLabel": "Switch language",
			"title":     "Switch language",
			"languageName": map[string]any{
				"en": "English",
				"ar": "Arabic",
			},
		},

		"passkeyModal": map[string]any{
			"title":              "Secure Access",
			"description":        "Enter the passkey to add a new project",
			"passkeyLabel":       "Passkey",
			"passkeyPlaceholder": "Enter passkey...",
			"errorMessage":       "Incorrect passkey. Please try again.",
			"cancelButton":       "Cancel",
			"validating":         "Validating...",
			"verifyButton":       "Verify",
		},

		// Navigation
		"portfolio": "Portfolio",
		"projects":  "Projects",

		// Categories
		"all":                       "All Projects",
		"ecommerce":                 "E-Commerce",
		"corporate":                 "Corporate",
		"healthcare":                "Healthcare",
		"food":                      "Food & Beverage",
		"realestate":                "Real Estate",
		"categoryFilterDescription": "Filter by category to explore our diverse portfolio",
		"categoryDeletedSuccess":    "Category deleted successfully!",
		"categoryLoadError":         "Failed to load categories. Please try again.",
		"categoryCreateError":       "Failed to create category. Please try again.",
		"categoryDeleteError":       "Failed to delete category. Please try again.",
		"categoryAlreadyExists":     "Category already exists.",

		// Project grid
		"viewProject":    "View Project",
		"noProjects":     "No projects found",
		"noProjectsDesc": "No projects match the selected category.",

		// Footer
		"followUs":          "Follow Us",
		"allRightsReserved": "All rights reserved.",
		"copyright":         "© 2026 MaVoid.",

		// Admin panel
		"adminPanel":     "Admin Panel",
		"manageProjects": "Manage your portfolio projects",
		"addNewProject":  "Add New Project",
		"createPortfolio": "Create a new portfolio item",
		"editProjects":   "Edit Projects",
		"modifyDelete":   "Modify or delete existing items",
		"totalProjects":  "Total Projects",
		"backToHome":     "Back to Home",

		// Add project form
		"addProject":       "Add Project",
		"projectTitle":     "Project Title",
		"projectTitleAr":   "Project Title (Arabic)",
		"description":      "Description",
		"descriptionAr":    "Description (Arabic)",
		"category":         "Category",
		"selectCategory":   "Select a category",
		"defaultCategories": "Default Categories",
		"customCategories": "Custom Categories",
		"addNewCategory":   "Add New Category",
		"imageUrl":         "Image URL",
		"imageUrlHelpText": "Leave empty to use a default image",
		"projectLink":      "Project Link (Optional)",
		"customColors":     "Custom Colors (Optional)",
		"createProject":    "Create Project",

		// Edit project
		"editProject": "Edit Project",
		"edit":        "Edit",
		"confirm":     "Confirm",
		"cancel":      "Cancel",

		// Notifications
		"projectCreatedSuccess":   "Project created successfully!",
		"projectAddedDescription": "{{title}} has been added to your portfolio.",
		"projectUpdatedSuccess":   "Project updated successfully!",
		"projectUpdateError":      "Failed to update project.",
		"projectDeletedSuccess":   "Project deleted successfully!",
		"projectDeletedError":     "Failed to delete project.",
		"projectCreationFailed":   "Failed to create project. Please try again.",
	},

	LocaleAr: {
		"languageToggle": map[string]any{
			"ariaLabel": "تبديل اللغة",
			"title":     "تبديل اللغة",
			"languageName": map[string]any{
				"en": "الإنجليزية",
				"ar": "العربية",
			},
		},

		"passkeyModal": map[string]any{
			"title":              "وصول آمن",
			"description":        "أدخل كلمة المرور لإضافة مشروع جديد",
			"passkeyLabel":       "كلمة المرور",
			"passkeyPlaceholder": "أدخل كلمة المرور...",
			"errorMessage":       "كلمة مرور غير صحيحة. يرجى المحاولة مرة أخرى.",
			"cancelButton":       "إلغاء",
			"validating":         "جاري التحقق...",
			"verifyButton":       "تحقق",
		},

		// Navigation
		"portfolio": "المعرض",
		"projects":  "المشاريع",

		// Categories
		"all":                       "جميع المشاريع",
		"ecommerce":                 "التجارة الإلكترونية",
		"corporate":                 "الشركات",
		"healthcare":                "الرعاية الصحية",
		"food":                      "الطعام والمشروبات",
		"realestate":                "العقارات",
		"categoryFilterDescription": "تصفية حسب الفئة لاستكشاف معرضنا المتنوع",
		"categoryDeletedSuccess":    "تم حذف الفئة بنجاح!",
		"categoryLoadError":         "فشل تحميل الفئات. حاول مرة أخرى.",
		"categoryCreateError":       "فشل إنشاء الفئة. يرجى المحاولة مرة أخرى.",
		"categoryDeleteError":       "فشل حذف الفئة. يرجى المحاولة مرة أخرى.",
		"categoryAlreadyExists":     "الفئة موجودة بالفعل.",

		// Project grid
		"viewProject":    "عرض المشروع",
		"noProjects":     "لم يتم العثور على مشاريع",
		"noProjectsDesc": "لا توجد مشاريع تطابق الفئة المحددة.",

		// Footer
		"followUs":          "تابعنا",
		"allRightsReserved": "جميع الحقوق محفوظة.",
		"copyright":         "© 2026 MaVoid.",

		// Admin panel
		"adminPanel":     "لوحة الإدارة",
		"manageProjects": "إدارة مشاريع المعرض الخاص بك",
		"addNewProject":  "إضافة مشروع جديد",
		"createPortfolio": "إنشاء عنصر معرض جديد",
		"editProjects":   "تعديل المشاريع",
		"modifyDelete":   "تعديل أو حذف العناصر الموجودة",
		"totalProjects":  "إجمالي المشاريع",
		"backToHome":     "العودة للرئيسية",

		// Add project form
		"addProject":       "إضافة مشروع",
		"projectTitle":     "عنوان المشروع",
		"projectTitleAr":   "عنوان المشروع (بالعربية)",
		"description":      "الوصف",
		"descriptionAr":    "الوصف (بالعربية)",
		"category":         "الفئة",
		"selectCategory":   "اختر فئة",
		"defaultCategories": "الفئات الافتراضية",
		"customCategories": "الفئات المخصصة",
		"addNewCategory":   "إضافة فئة جديدة",
		"imageUrl":         "رابط الصورة",
		"imageUrlHelpText": "اتركه فارغًا لاستخدام صورة افتراضية",
		"projectLink":      "رابط المشروع (اختياري)",
		"customColors":     "ألوان مخصصة (اختياري)",
		"createProject":    "إنشاء المشروع",

		// Edit project
		"editProject": "تعديل المشروع",
		"edit":        "تعديل",
		"confirm":     "تأكيد",
		"cancel":      "إلغاء",

		// Notifications
		"projectCreatedSuccess":   "تم إنشاء المشروع بنجاح!",
		"projectAddedDescription": "تمت إضافة {{title}} إلى محفظتك.",
		"projectUpdatedSuccess":   "تم تحديث المشروع بنجاح!",
		"projectUpdateError":      "فشل تحديث المشروع.",
		"projectDeletedSuccess":   "تم حذف المشروع بنجاح!",
		"projectDeletedError":     "فشل حذف المشروع.",
		"projectCreationFailed":   "فشل إنشاء المشروع. يرجى المحاولة مرة أخرى.",
	},
}
