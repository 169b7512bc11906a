package categories

var categoryRepository = &CategoryRepository{}
var categoryService = &CategoryService{
	categoryRepository: categoryRepository,
}
var categoryController = &CategoryController{
	categoryService: categoryService,
}

func GetCategoryService() *CategoryService {
	return categoryService
}

func GetCategoryController() *CategoryController {
	return categoryController
}
