package page

// Container ids the render services and the layout agree on.
const (
	ToastID      = "toast-interactive"
	DemoID       = "demo"
	ProductsID   = "products-container"
	CategoriesID = "categories"
	AlertsID     = "alerts"
)

// Layout is the built-in catalog page. Only the container ids are contractual.
const Layout = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Reseller · Catálogo</title>
  <link rel="stylesheet" href="/static/output.css">
</head>
<body class="bg-gray-50 dark:bg-gray-900">
  <div id="alerts" class="fixed top-4 inset-x-0 mx-auto max-w-xl space-y-2 z-50"></div>
  <header class="p-6">
    <h1 class="text-3xl font-bold text-gray-900 dark:text-white">Reseller</h1>
    <button id="demo" type="button" data-href="https://www.youtube.com/watch?v=dQw4w9WgXcQ"
      class="mt-4 text-white bg-blue-700 hover:bg-blue-800 rounded-lg text-sm px-5 py-2.5">Ver demo</button>
  </header>
  <main class="p-6 space-y-8">
    <section>
      <label for="categories" class="block mb-2 text-sm font-medium text-gray-900 dark:text-white">Categorías</label>
      <select id="categories" class="bg-gray-50 border border-gray-300 text-gray-900 text-sm rounded-lg block w-full p-2.5">
        <option selected disabled>Cargando...</option>
      </select>
    </section>
    <section>
      <div id="products-container" class="grid gap-6 sm:grid-cols-2 lg:grid-cols-3"></div>
    </section>
  </main>
  <div id="toast-interactive" class="hidden w-full max-w-xs p-4 text-gray-500 bg-white rounded-lg shadow" role="alert">
    <div class="text-sm font-normal">Suscríbete para recibir ofertas.</div>
  </div>
</body>
</html>`
