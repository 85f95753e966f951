// Package web holds the embedded dashboard page. The page is deliberately
// plain HTML/JS: every action posts to the local /api endpoints and carries
// the API URL field with it, so the server stays stateless.
package web

// DashboardHTML is the complete single-page dashboard.
const DashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Bank Churn Prediction Dashboard</title>
    <style>
        :root {
            --bg: #0f172a;
            --card: #1e293b;
            --border: #334155;
            --text: #f1f5f9;
            --muted: #94a3b8;
            --blue: #3b82f6;
            --green: #10b981;
            --red: #ef4444;
            --yellow: #f59e0b;
        }

        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
        }

        .layout { display: flex; min-height: 100vh; }

        .sidebar {
            width: 280px;
            background: var(--card);
            border-right: 1px solid var(--border);
            padding: 24px 20px;
            flex-shrink: 0;
        }

        .sidebar h2 { font-size: 16px; margin-bottom: 16px; }

        .main { flex: 1; padding: 24px 32px; max-width: 1100px; }

        h1 { font-size: 24px; margin-bottom: 20px; }

        .health-badge {
            display: inline-flex;
            align-items: center;
            gap: 8px;
            margin-top: 12px;
            padding: 6px 12px;
            border: 1px solid var(--border);
            border-radius: 4px;
            font-size: 13px;
        }

        .health-dot { width: 8px; height: 8px; border-radius: 50%; background: var(--muted); }
        .health-dot.connected { background: var(--green); }
        .health-dot.unreachable { background: var(--red); }

        .tabs { display: flex; gap: 4px; margin-bottom: 20px; border-bottom: 1px solid var(--border); }

        .tab {
            padding: 10px 16px;
            background: none;
            border: none;
            color: var(--muted);
            font-size: 14px;
            cursor: pointer;
            border-bottom: 2px solid transparent;
        }

        .tab.active { color: var(--text); border-bottom-color: var(--blue); }

        .panel { display: none; }
        .panel.active { display: block; }

        .card {
            background: var(--card);
            border: 1px solid var(--border);
            border-radius: 8px;
            padding: 20px;
            margin-bottom: 16px;
        }

        .form-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 12px 24px; }

        label { display: block; font-size: 12px; color: var(--muted); margin-bottom: 4px; }

        input, select {
            width: 100%;
            padding: 8px 10px;
            background: var(--bg);
            border: 1px solid var(--border);
            border-radius: 4px;
            color: var(--text);
            font-size: 14px;
        }

        button.action {
            margin-top: 16px;
            padding: 10px 20px;
            background: var(--blue);
            border: none;
            border-radius: 4px;
            color: white;
            font-size: 14px;
            cursor: pointer;
        }

        button.action:disabled { opacity: 0.5; cursor: wait; }

        .metrics { display: flex; gap: 16px; margin-top: 16px; }

        .metric { flex: 1; background: var(--bg); border: 1px solid var(--border); border-radius: 6px; padding: 14px; }
        .metric .label { font-size: 11px; color: var(--muted); text-transform: uppercase; letter-spacing: 0.5px; }
        .metric .value { font-size: 26px; font-weight: 600; }

        .banner { margin-top: 16px; padding: 12px 16px; border-radius: 6px; font-size: 14px; display: none; }
        .banner.success { display: block; background: rgba(16, 185, 129, 0.15); border: 1px solid var(--green); }
        .banner.warning { display: block; background: rgba(245, 158, 11, 0.15); border: 1px solid var(--yellow); }
        .banner.error { display: block; background: rgba(239, 68, 68, 0.15); border: 1px solid var(--red); white-space: pre-wrap; }

        table { width: 100%; border-collapse: collapse; margin-top: 12px; font-size: 13px; }
        th, td { padding: 6px 10px; border: 1px solid var(--border); text-align: left; }
        th { background: var(--bg); color: var(--muted); }

        .slider-row { display: flex; align-items: center; gap: 16px; }
        .slider-row input[type=range] { flex: 1; }
        .slider-value { min-width: 48px; font-variant-numeric: tabular-nums; }
    </style>
</head>
<body>
<div class="layout">
    <aside class="sidebar">
        <h2>Configuration</h2>
        <label for="api-url">API URL</label>
        <input type="text" id="api-url" value="">
        <div class="health-badge">
            <span class="health-dot" id="health-dot"></span>
            <span id="health-text">checking...</span>
        </div>
    </aside>

    <main class="main">
        <h1>Bank Churn Prediction &amp; Monitoring</h1>

        <div class="tabs">
            <button class="tab active" data-panel="single">Single Prediction</button>
            <button class="tab" data-panel="batch">Batch Prediction</button>
            <button class="tab" data-panel="drift">Drift Detection</button>
        </div>

        <section class="panel active" id="panel-single">
            <div class="card">
                <div class="form-grid">
                    <div><label>Credit Score</label><input type="number" id="credit-score" min="300" max="850" value="650"></div>
                    <div><label>Number of Products</label><input type="number" id="num-products" min="1" max="4" value="2"></div>
                    <div><label>Age</label><input type="number" id="age" min="18" max="100" value="35"></div>
                    <div><label>Has Credit Card?</label><select id="has-card"><option value="0">0</option><option value="1" selected>1</option></select></div>
                    <div><label>Tenure (Years)</label><input type="number" id="tenure" min="0" max="10" value="5"></div>
                    <div><label>Is Active Member?</label><select id="active-member"><option value="0">0</option><option value="1" selected>1</option></select></div>
                    <div><label>Balance</label><input type="number" id="balance" min="0" max="250000" step="0.01" value="50000"></div>
                    <div><label>Geography</label><select id="geography"><option>France</option><option>Germany</option><option>Spain</option></select></div>
                    <div><label>Estimated Salary</label><input type="number" id="salary" min="0" max="200000" step="0.01" value="75000"></div>
                </div>
                <button class="action" id="predict-btn">Predict</button>
            </div>
            <div class="card" id="single-result" style="display:none">
                <div class="metrics">
                    <div class="metric"><div class="label">Churn Probability</div><div class="value" id="res-prob"></div></div>
                    <div class="metric"><div class="label">Prediction</div><div class="value" id="res-label"></div></div>
                    <div class="metric"><div class="label">Risk Level</div><div class="value" id="res-risk"></div></div>
                </div>
                <div class="banner" id="single-banner"></div>
            </div>
            <div class="banner error" id="single-error"></div>
        </section>

        <section class="panel" id="panel-batch">
            <div class="card">
                <label>Upload CSV file</label>
                <input type="file" id="batch-file" accept=".csv">
                <button class="action" id="batch-btn" disabled>Predict Batch</button>
            </div>
            <div class="card" id="batch-preview-card" style="display:none">
                <div class="label">Preview</div>
                <div id="batch-preview"></div>
            </div>
            <div class="card" id="batch-result-card" style="display:none">
                <div class="banner success" id="batch-summary"></div>
                <div id="batch-result"></div>
                <button class="action" id="batch-download">Download Results</button>
            </div>
            <div class="banner error" id="batch-error"></div>
        </section>

        <section class="panel" id="panel-drift">
            <div class="card">
                <p style="color:var(--muted); margin-bottom:12px">Compare production data against reference training data.</p>
                <label>Drift Threshold (p-value)</label>
                <div class="slider-row">
                    <input type="range" id="drift-threshold" min="0.01" max="0.10" step="0.01" value="0.05">
                    <span class="slider-value" id="drift-value">0.05</span>
                </div>
                <button class="action" id="drift-btn">Check Drift</button>
            </div>
            <div class="card" id="drift-result" style="display:none">
                <div class="metrics">
                    <div class="metric"><div class="label">Features Analyzed</div><div class="value" id="drift-analyzed"></div></div>
                    <div class="metric"><div class="label">Features with Drift</div><div class="value" id="drift-drifted"></div></div>
                </div>
                <div class="banner" id="drift-banner"></div>
            </div>
            <div class="banner error" id="drift-error"></div>
        </section>
    </main>
</div>

<script>
(function () {
    var $ = function (id) { return document.getElementById(id); };

    function apiURL() { return $('api-url').value.trim(); }

    function showError(id, text) {
        var el = $(id);
        el.textContent = text;
        el.classList.add('error');
        el.style.display = 'block';
    }

    function clearError(id) {
        $(id).style.display = 'none';
    }

    // Tabs
    document.querySelectorAll('.tab').forEach(function (tab) {
        tab.addEventListener('click', function () {
            document.querySelectorAll('.tab').forEach(function (t) { t.classList.remove('active'); });
            document.querySelectorAll('.panel').forEach(function (p) { p.classList.remove('active'); });
            tab.classList.add('active');
            $('panel-' + tab.dataset.panel).classList.add('active');
        });
    });

    // Health check on load
    function checkHealth() {
        fetch('/api/health?api_url=' + encodeURIComponent(apiURL()))
            .then(function (r) { return r.json(); })
            .then(function (data) {
                var dot = $('health-dot');
                dot.className = 'health-dot ' + data.status;
                $('health-text').textContent = data.status === 'connected' ? 'API Connected' : 'API Unreachable';
            })
            .catch(function () {
                $('health-dot').className = 'health-dot unreachable';
                $('health-text').textContent = 'API Unreachable';
            });
    }

    // Single prediction
    $('predict-btn').addEventListener('click', function () {
        clearError('single-error');
        $('single-result').style.display = 'none';
        var btn = $('predict-btn');
        btn.disabled = true;

        fetch('/api/predict', {
            method: 'POST',
            headers: { 'Content-Type': 'application/json' },
            body: JSON.stringify({
                api_url: apiURL(),
                customer: {
                    credit_score: parseInt($('credit-score').value, 10),
                    age: parseInt($('age').value, 10),
                    tenure: parseInt($('tenure').value, 10),
                    balance: parseFloat($('balance').value),
                    num_of_products: parseInt($('num-products').value, 10),
                    has_cr_card: parseInt($('has-card').value, 10),
                    is_active_member: parseInt($('active-member').value, 10),
                    estimated_salary: parseFloat($('salary').value),
                    geography: $('geography').value
                }
            })
        })
            .then(function (r) { return r.json().then(function (data) { return { ok: r.ok, data: data }; }); })
            .then(function (res) {
                if (!res.ok) {
                    showError('single-error', 'Error: ' + (res.data.error || 'request failed'));
                    return;
                }
                $('res-prob').textContent = res.data.churn_probability_pct;
                $('res-label').textContent = res.data.label;
                $('res-risk').textContent = res.data.risk_level;
                var banner = $('single-banner');
                if (res.data.will_churn) {
                    banner.className = 'banner warning';
                    banner.textContent = 'This customer is likely to churn.';
                } else {
                    banner.className = 'banner success';
                    banner.textContent = 'This customer is likely to stay.';
                }
                $('single-result').style.display = 'block';
            })
            .catch(function (err) { showError('single-error', 'Request failed: ' + err.message); })
            .finally(function () { btn.disabled = false; });
    });

    // Batch: preview on file select, score on click
    function renderTable(container, columns, rows) {
        var html = '<table><thead><tr>';
        columns.forEach(function (c) { html += '<th>' + esc(c) + '</th>'; });
        html += '</tr></thead><tbody>';
        (rows || []).forEach(function (row) {
            html += '<tr>';
            row.forEach(function (cell) { html += '<td>' + esc(cell) + '</td>'; });
            html += '</tr>';
        });
        html += '</tbody></table>';
        $(container).innerHTML = html;
    }

    function esc(s) {
        return String(s).replace(/&/g, '&amp;').replace(/</g, '&lt;').replace(/>/g, '&gt;');
    }

    $('batch-file').addEventListener('change', function () {
        clearError('batch-error');
        $('batch-result-card').style.display = 'none';
        var file = this.files[0];
        $('batch-btn').disabled = !file;
        if (!file) { return; }

        var form = new FormData();
        form.append('file', file);
        fetch('/api/batch/preview', { method: 'POST', body: form })
            .then(function (r) { return r.json().then(function (data) { return { ok: r.ok, data: data }; }); })
            .then(function (res) {
                if (!res.ok) {
                    showError('batch-error', 'Error: ' + (res.data.error || 'preview failed'));
                    return;
                }
                renderTable('batch-preview', res.data.columns, res.data.rows);
                $('batch-preview-card').style.display = 'block';
            })
            .catch(function (err) { showError('batch-error', 'Preview failed: ' + err.message); });
    });

    var lastCSV = '';

    $('batch-btn').addEventListener('click', function () {
        clearError('batch-error');
        var file = $('batch-file').files[0];
        if (!file) { return; }
        var btn = $('batch-btn');
        btn.disabled = true;

        var form = new FormData();
        form.append('file', file);
        form.append('api_url', apiURL());
        fetch('/api/predict/batch', { method: 'POST', body: form })
            .then(function (r) { return r.json().then(function (data) { return { ok: r.ok, data: data }; }); })
            .then(function (res) {
                if (!res.ok) {
                    var msg = 'Error: ' + (res.data.error || 'batch failed');
                    if (res.data.missing_columns) {
                        msg += '\nMissing columns: ' + res.data.missing_columns.join(', ');
                        msg += '\nEnsure you have a Geography column to convert, or Geography_Germany/Geography_Spain directly.';
                    }
                    showError('batch-error', msg);
                    return;
                }
                $('batch-summary').textContent = 'Processed ' + res.data.processed + ' records.';
                renderTable('batch-result', res.data.columns, res.data.rows);
                lastCSV = res.data.csv;
                $('batch-result-card').style.display = 'block';
            })
            .catch(function (err) { showError('batch-error', 'Batch processing failed: ' + err.message); })
            .finally(function () { btn.disabled = false; });
    });

    $('batch-download').addEventListener('click', function () {
        var blob = new Blob([lastCSV], { type: 'text/csv' });
        var a = document.createElement('a');
        a.href = URL.createObjectURL(blob);
        a.download = 'predictions.csv';
        a.click();
        URL.revokeObjectURL(a.href);
    });

    // Drift
    $('drift-threshold').addEventListener('input', function () {
        $('drift-value').textContent = parseFloat(this.value).toFixed(2);
    });

    $('drift-btn').addEventListener('click', function () {
        clearError('drift-error');
        $('drift-result').style.display = 'none';
        var btn = $('drift-btn');
        btn.disabled = true;

        fetch('/api/drift', {
            method: 'POST',
            headers: { 'Content-Type': 'application/json' },
            body: JSON.stringify({
                api_url: apiURL(),
                threshold: parseFloat($('drift-threshold').value)
            })
        })
            .then(function (r) { return r.json().then(function (data) { return { ok: r.ok, data: data }; }); })
            .then(function (res) {
                if (!res.ok) {
                    showError('drift-error', 'Error: ' + (res.data.error || 'drift check failed'));
                    return;
                }
                $('drift-analyzed').textContent = res.data.features_analyzed;
                $('drift-drifted').textContent = res.data.features_drifted;
                var banner = $('drift-banner');
                if (res.data.drifted) {
                    banner.className = 'banner warning';
                    banner.textContent = 'Data Drift Detected!';
                } else {
                    banner.className = 'banner success';
                    banner.textContent = 'No Data Drift Detected.';
                }
                $('drift-result').style.display = 'block';
            })
            .catch(function (err) { showError('drift-error', 'Drift check failed: ' + err.message); })
            .finally(function () { btn.disabled = false; });
    });

    // Seed the URL field from the server default, then probe.
    fetch('/api/config')
        .then(function (r) { return r.json(); })
        .then(function (data) {
            $('api-url').value = data.api_url;
            checkHealth();
        })
        .catch(checkHealth);

    $('api-url').addEventListener('change', checkHealth);
})();
</script>
</body>
</html>
`
