package testutil

// SampleDocument is a rendered catalog page with three cards and empty filter
// fields.
const SampleDocument = `<!DOCTYPE html>
<html>
<body>
  <form id="filters">
    <input id="query" type="text" value="">
    <button id="search-button" type="button" disabled>Search</button>
    <input id="min-price" type="number" value="">
    <input id="max-price" type="number" value="">
    <button id="price-button" type="button" disabled>Filter price</button>
  </form>
  <p>Results: <span id="result-count">3</span></p>
  <div id="no-results" hidden>No cars match your search.</div>
  <section id="car-list">
    <article class="car-card" data-make="Toyota" data-model="Corolla" data-price="20000">
      <h3>Toyota Corolla</h3>
    </article>
    <article class="car-card" data-make="Honda" data-model="Civic" data-price="15000">
      <h3>Honda Civic</h3>
    </article>
    <article class="car-card" data-make="Toyota" data-model="Camry" data-price="30000">
      <h3>Toyota Camry</h3>
    </article>
  </section>
</body>
</html>`
